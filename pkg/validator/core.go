package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrValidationFailed so callers can use errors.Is.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the first message recorded for field, or an empty string.
func (ve ValidationErrors) Get(field string) string {
	for _, err := range ve {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

// Map flattens the collection into field -> first message.
func (ve ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, ok := out[err.Field]; !ok {
			out[err.Field] = err.Message
		}
	}
	return out
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}

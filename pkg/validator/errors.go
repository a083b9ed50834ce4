package validator

import "errors"

var (
	// ErrValidationFailed is matched by ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilPattern is the panic value for Matches and Pattern called with a nil regexp.
	ErrNilPattern = errors.New("validator: nil pattern")
)

package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "email", Message: "is required"})
		assert.Equal(t, "validation failed: email: is required", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		errs := validator.ValidationErrors{
			{Field: "email", Message: "is required"},
			{Field: "phone", Message: "bad format"},
		}
		assert.Equal(t, "validation failed: email: is required; phone: bad format", errs.Error())
	})
}

func TestValidationErrors_Helpers(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "inn", Message: "first"},
		{Field: "phone", Message: "bad phone"},
		{Field: "inn", Message: "second"},
	}

	t.Run("Has", func(t *testing.T) {
		assert.True(t, errs.Has("inn"))
		assert.False(t, errs.Has("name"))
	})

	t.Run("Get returns first message", func(t *testing.T) {
		assert.Equal(t, "first", errs.Get("inn"))
		assert.Equal(t, "", errs.Get("name"))
	})

	t.Run("Fields keeps first-seen order", func(t *testing.T) {
		assert.Equal(t, []string{"inn", "phone"}, errs.Fields())
	})

	t.Run("Map keeps first message per field", func(t *testing.T) {
		assert.Equal(t, map[string]string{"inn": "first", "phone": "bad phone"}, errs.Map())
	})

	t.Run("IsEmpty", func(t *testing.T) {
		assert.False(t, errs.IsEmpty())
		assert.True(t, validator.ValidationErrors{}.IsEmpty())
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("wrapped validation errors", func(t *testing.T) {
		original := validator.ValidationErrors{{Field: "name", Message: "required"}}
		wrapped := fmt.Errorf("submit form: %w", original)

		extracted := validator.ExtractValidationErrors(wrapped)
		require.NotNil(t, extracted)
		assert.Equal(t, original, extracted)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
	})

	t.Run("unrelated error", func(t *testing.T) {
		err := errors.New("boom")
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.False(t, validator.IsValidationError(err))
		assert.NotErrorIs(t, err, validator.ErrValidationFailed)
	})
}

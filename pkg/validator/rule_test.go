package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestRule_DefaultMessages(t *testing.T) {
	tests := []struct {
		name    string
		rule    validator.Rule
		invalid string
		message string
		key     string
	}{
		{name: "required", rule: validator.Required(""), invalid: " ", message: validator.MsgRequired, key: validator.KeyRequired},
		{name: "email", rule: validator.Email(""), invalid: "nope", message: validator.MsgEmail, key: validator.KeyEmail},
		{name: "number", rule: validator.Number(""), invalid: "1a", message: validator.MsgNumber, key: validator.KeyNumber},
		{name: "phone", rule: validator.Phone(""), invalid: "8999", message: validator.MsgPhone, key: validator.KeyPhone},
		{name: "inn", rule: validator.INN(""), invalid: "123", message: validator.MsgINN, key: validator.KeyINN},
		{name: "matches", rule: validator.Matches(regexp.MustCompile(`^a$`), ""), invalid: "b", message: validator.MsgInvalidFormat, key: validator.KeyPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.rule.Validate(tt.invalid))
			assert.Equal(t, tt.key, tt.rule.TranslationKey)

			verr := tt.rule.Error("field")
			assert.Equal(t, "field", verr.Field)
			assert.Equal(t, tt.message, verr.Message)
			assert.Equal(t, tt.key, verr.TranslationKey)
			assert.Equal(t, map[string]any{"field": "field"}, verr.TranslationValues)
		})
	}
}

func TestRule_CustomMessage(t *testing.T) {
	t.Run("custom message is shown verbatim without translation key", func(t *testing.T) {
		rule := validator.Required("Введите имя")
		assert.Equal(t, "Введите имя", rule.Validate(""))
		assert.Empty(t, rule.TranslationKey)
	})

	t.Run("WithKey attaches a key without touching the original", func(t *testing.T) {
		rule := validator.Required("Введите имя")
		keyed := rule.WithKey("forms.name.required")
		assert.Equal(t, "forms.name.required", keyed.TranslationKey)
		assert.Empty(t, rule.TranslationKey)
		assert.Equal(t, "Введите имя", keyed.Validate(""))
	})

	t.Run("valid value returns empty string", func(t *testing.T) {
		assert.Empty(t, validator.Email("bad").Validate("a@b.co"))
	})
}

func TestFunc(t *testing.T) {
	innLength := validator.Func(func(v string) bool {
		return len(v) == 10 || len(v) == 12
	}, "ИНН должен быть либо 10 либо 12 цифр")

	assert.Empty(t, innLength.Validate("1234567890"))
	assert.Empty(t, innLength.Validate("123456789012"))
	assert.Equal(t, "ИНН должен быть либо 10 либо 12 цифр", innLength.Validate("12345678901"))

	t.Run("zero-value message falls back to default", func(t *testing.T) {
		rule := validator.Rule{Check: func(string) bool { return false }}
		assert.Equal(t, validator.MsgInvalidFormat, rule.Validate("x"))
		assert.Equal(t, validator.MsgInvalidFormat, rule.Error("f").Message)
	})
}

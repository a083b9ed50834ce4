package validator_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestIsRequired(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "non-empty value", input: "Иван", expected: ""},
		{name: "value with surrounding spaces", input: "  x  ", expected: ""},
		{name: "empty value", input: "", expected: validator.MsgRequired},
		{name: "whitespace only", input: " \t\n", expected: validator.MsgRequired},
		{name: "non-breaking space only", input: "\u00a0", expected: validator.MsgRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, validator.IsRequired(tt.input))
		})
	}
}

func TestIsEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.example.org",
		"user+tag@example.ru",
		`"john doe"@example.com`,
		"user@[192.168.0.1]",
		"user@my-host.example.io",
		"пользователь@example.com",
	}
	for _, email := range valid {
		t.Run("valid "+email, func(t *testing.T) {
			assert.Empty(t, validator.IsEmail(email))
		})
	}

	invalid := []string{
		"",
		"plainaddress",
		"user@localhost",
		"user@example.c",
		"user.@example.com",
		".user@example.com",
		"us er@example.com",
		"user@@example.com",
		"user@exa_mple.com",
		"us\u00a0er@example.com",
		"us\ver@example.com",
		"us\u2028er@example.com",
		"us\u3000er@example.com",
		"\ufeffuser@example.com",
	}
	for _, email := range invalid {
		t.Run("invalid "+email, func(t *testing.T) {
			assert.Equal(t, validator.MsgEmail, validator.IsEmail(email))
		})
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		valid bool
	}{
		{name: "digits", input: "1234567890", valid: true},
		{name: "single zero", input: "0", valid: true},
		{name: "empty", input: "", valid: false},
		{name: "negative", input: "-1", valid: false},
		{name: "decimal", input: "1.5", valid: false},
		{name: "letters", input: "12a", valid: false},
		{name: "trailing newline", input: "12\n", valid: false},
		{name: "non-ascii digits", input: "١٢٣", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.valid {
				assert.Empty(t, validator.IsNumber(tt.input))
			} else {
				assert.Equal(t, validator.MsgNumber, validator.IsNumber(tt.input))
			}
		})
	}
}

func TestIsPhone(t *testing.T) {
	t.Run("accepts formatted number", func(t *testing.T) {
		assert.Empty(t, validator.IsPhone("+7 (999) 123-45-67"))
	})

	t.Run("rejects raw digits", func(t *testing.T) {
		assert.Equal(t, validator.MsgPhone, validator.IsPhone("79991234567"))
	})

	t.Run("rejects partially formatted number", func(t *testing.T) {
		assert.Equal(t, validator.MsgPhone, validator.IsPhone("+7 (999) 123-45"))
	})

	t.Run("rejects other country code", func(t *testing.T) {
		assert.Equal(t, validator.MsgPhone, validator.IsPhone("+1 (999) 123-45-67"))
	})

	t.Run("rejects empty", func(t *testing.T) {
		assert.Equal(t, validator.MsgPhone, validator.IsPhone(""))
	})
}

func TestIsINN(t *testing.T) {
	assert.Empty(t, validator.IsINN("7707083893"))
	assert.Empty(t, validator.IsINN("500100732259"))
	assert.Equal(t, validator.MsgINN, validator.IsINN("12345678901"))
	assert.Equal(t, validator.MsgINN, validator.IsINN("77070838ab"))
	assert.Equal(t, validator.MsgINN, validator.IsINN(""))
}

func TestPattern(t *testing.T) {
	zip := regexp.MustCompile(`^\d{6}$`)

	t.Run("passes when regex matches", func(t *testing.T) {
		assert.Empty(t, validator.Pattern(zip, "bad zip")("123456"))
	})

	t.Run("returns message when regex does not match", func(t *testing.T) {
		assert.Equal(t, "bad zip", validator.Pattern(zip, "bad zip")("12345"))
	})

	t.Run("falls back to default message", func(t *testing.T) {
		assert.Equal(t, validator.MsgInvalidFormat, validator.Pattern(zip, "")("abc"))
	})

	t.Run("panics on nil regex", func(t *testing.T) {
		assert.PanicsWithValue(t, validator.ErrNilPattern, func() {
			validator.Pattern(nil, "msg")
		})
	})
}

func TestValidateField(t *testing.T) {
	t.Run("required message for empty value", func(t *testing.T) {
		assert.Equal(t, "Поле обязательно", validator.ValidateField("", validator.IsRequired))
	})

	t.Run("empty string when all validators pass", func(t *testing.T) {
		assert.Equal(t, "", validator.ValidateField("user@example.com", validator.IsRequired, validator.IsEmail))
	})

	t.Run("empty string without validators", func(t *testing.T) {
		assert.Equal(t, "", validator.ValidateField("anything"))
	})

	t.Run("stops at first failure", func(t *testing.T) {
		calls := 0
		spy := func(string) string {
			calls++
			return ""
		}

		msg := validator.ValidateField("", validator.IsRequired, spy)
		assert.Equal(t, validator.MsgRequired, msg)
		assert.Equal(t, 0, calls)

		msg = validator.ValidateField("x", validator.IsRequired, spy, validator.IsNumber, spy)
		assert.Equal(t, validator.MsgNumber, msg)
		assert.Equal(t, 1, calls)
	})
}

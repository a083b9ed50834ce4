package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "trims whitespace and converts to lowercase", input: "  USER@EXAMPLE.COM  ", expected: "user@example.com"},
		{name: "collapses consecutive dots in local part", input: "user..name@example.com", expected: "user.name@example.com"},
		{name: "removes leading and trailing dots in local part", input: ".user.name.@example.com", expected: "user.name@example.com"},
		{name: "keeps invalid input", input: "invalid-email", expected: "invalid-email"},
		{name: "keeps input with two at signs", input: "a@b@c.com", expected: "a@b@c.com"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizer.NormalizeEmail(tt.input))
		})
	}
}

func TestSingleLine(t *testing.T) {
	assert.Equal(t, "ООО Ромашка", sanitizer.SingleLine("  ООО\n\tРомашка  "))
	assert.Equal(t, "", sanitizer.SingleLine(" \n "))
}

func TestApplyAndCompose(t *testing.T) {
	t.Run("apply runs transforms left to right", func(t *testing.T) {
		got := sanitizer.Apply("  Hello ", strings.TrimSpace, strings.ToUpper, func(s string) string { return s + "!" })
		assert.Equal(t, "HELLO!", got)
	})

	t.Run("apply without transforms returns input", func(t *testing.T) {
		assert.Equal(t, 42, sanitizer.Apply(42))
	})

	t.Run("compose is reusable", func(t *testing.T) {
		double := func(n int) int { return n * 2 }
		inc := func(n int) int { return n + 1 }
		f := sanitizer.Compose(double, inc)
		assert.Equal(t, 7, f(3))
		assert.Equal(t, 11, f(5))
	})
}

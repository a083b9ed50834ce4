package schema

import (
	"regexp"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

// StringSchema is an ordered chain of rules applied to one string field.
// Rules run in the order they were added and the first failure wins.
type StringSchema struct {
	rules []validator.Rule
}

// String starts an empty rule chain.
func String() *StringSchema {
	return &StringSchema{}
}

// Rule appends an already built rule.
func (s *StringSchema) Rule(r validator.Rule) *StringSchema {
	s.rules = append(s.rules, r)
	return s
}

// Required appends validator.Required. An empty message selects the default.
func (s *StringSchema) Required(message string) *StringSchema {
	return s.Rule(validator.Required(message))
}

func (s *StringSchema) Email(message string) *StringSchema {
	return s.Rule(validator.Email(message))
}

func (s *StringSchema) Phone(message string) *StringSchema {
	return s.Rule(validator.Phone(message))
}

func (s *StringSchema) Number(message string) *StringSchema {
	return s.Rule(validator.Number(message))
}

func (s *StringSchema) INN(message string) *StringSchema {
	return s.Rule(validator.INN(message))
}

// Pattern appends an arbitrary predicate.
func (s *StringSchema) Pattern(check func(value string) bool, message string) *StringSchema {
	return s.Rule(validator.Func(check, message))
}

// Regex appends a regular expression rule. Panics with validator.ErrNilPattern on nil re.
func (s *StringSchema) Regex(re *regexp.Regexp, message string) *StringSchema {
	return s.Rule(validator.Matches(re, message))
}

// WithKey sets the translation key of the most recently added rule.
// It is a no-op on an empty chain.
func (s *StringSchema) WithKey(key string) *StringSchema {
	if n := len(s.rules); n > 0 {
		s.rules[n-1] = s.rules[n-1].WithKey(key)
	}
	return s
}

// Validate returns the message of the first failing rule, or an empty string.
func (s *StringSchema) Validate(value string) string {
	if r, ok := s.firstFailure(value); ok {
		return r.Text()
	}
	return ""
}

// ValidateError is Validate returning a ValidationError for field.
func (s *StringSchema) ValidateError(field, value string) (validator.ValidationError, bool) {
	if r, ok := s.firstFailure(value); ok {
		return r.Error(field), true
	}
	return validator.ValidationError{}, false
}

// Len returns the number of rules in the chain.
func (s *StringSchema) Len() int {
	return len(s.rules)
}

func (s *StringSchema) firstFailure(value string) (validator.Rule, bool) {
	for _, r := range s.rules {
		if !r.Check(value) {
			return r, true
		}
	}
	return validator.Rule{}, false
}

package validator

import (
	"regexp"
	"strings"
)

var (
	// emailLocal rejects Unicode separators, \v and BOM besides ASCII whitespace.
	emailLocal  = `[^<>()\[\]\\.,;:\s\v\p{Z}\x{FEFF}@"]+`
	emailRegex  = regexp.MustCompile(`^((` + emailLocal + `(\.` + emailLocal + `)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
	numberRegex = regexp.MustCompile(`^\d+$`)
	phoneRegex  = regexp.MustCompile(`^\+7 \(\d{3}\) \d{3}-\d{2}-\d{2}$`)
)

// Rule is a single predicate over a string value paired with the message
// reported when the predicate does not hold. Rules are values and are never
// mutated after construction.
type Rule struct {
	Check          func(value string) bool
	Message        string
	TranslationKey string
}

// Validate returns an empty string when value passes the rule and the rule
// message otherwise.
func (r Rule) Validate(value string) string {
	if r.Check(value) {
		return ""
	}
	return r.Text()
}

// Text returns the message reported on failure, never empty.
func (r Rule) Text() string {
	if r.Message == "" {
		return MsgInvalidFormat
	}
	return r.Message
}

// Error builds the ValidationError reported for field when the rule fails.
func (r Rule) Error(field string) ValidationError {
	return ValidationError{
		Field:          field,
		Message:        r.Text(),
		TranslationKey: r.TranslationKey,
		TranslationValues: map[string]any{
			"field": field,
		},
	}
}

// WithKey returns a copy of the rule carrying the given translation key.
func (r Rule) WithKey(key string) Rule {
	r.TranslationKey = key
	return r
}

// newRule keeps the translation key only for default messages: a caller
// supplied message is shown verbatim unless a key is attached with WithKey.
func newRule(check func(string) bool, message, defaultMessage, key string) Rule {
	if message == "" {
		return Rule{Check: check, Message: defaultMessage, TranslationKey: key}
	}
	return Rule{Check: check, Message: message}
}

// Required fails for empty or whitespace-only values.
func Required(message string) Rule {
	return newRule(func(v string) bool {
		return strings.TrimSpace(v) != ""
	}, message, MsgRequired, KeyRequired)
}

func Email(message string) Rule {
	return newRule(emailRegex.MatchString, message, MsgEmail, KeyEmail)
}

// Number accepts one or more ASCII digits and nothing else.
func Number(message string) Rule {
	return newRule(numberRegex.MatchString, message, MsgNumber, KeyNumber)
}

// Phone accepts only the fully formatted "+7 (XXX) XXX-XX-XX" display form.
func Phone(message string) Rule {
	return newRule(phoneRegex.MatchString, message, MsgPhone, KeyPhone)
}

// INN accepts Russian taxpayer numbers: 10 digits for organisations, 12 for individuals.
func INN(message string) Rule {
	return newRule(func(v string) bool {
		return numberRegex.MatchString(v) && (len(v) == 10 || len(v) == 12)
	}, message, MsgINN, KeyINN)
}

// Matches fails when re does not match the value. Panics with ErrNilPattern on nil re.
func Matches(re *regexp.Regexp, message string) Rule {
	if re == nil {
		panic(ErrNilPattern)
	}
	return newRule(re.MatchString, message, MsgInvalidFormat, KeyPattern)
}

// Func wraps an arbitrary predicate.
func Func(check func(value string) bool, message string) Rule {
	return newRule(check, message, MsgInvalidFormat, KeyPattern)
}

package validator

import "regexp"

// Validator checks a single value. It returns an empty string when the value
// is valid and a human-readable message otherwise.
type Validator func(value string) string

var (
	isRequired = Required("")
	isEmail    = Email("")
	isNumber   = Number("")
	isPhone    = Phone("")
	isINN      = INN("")
)

func IsRequired(value string) string { return isRequired.Validate(value) }
func IsEmail(value string) string    { return isEmail.Validate(value) }
func IsNumber(value string) string   { return isNumber.Validate(value) }
func IsPhone(value string) string    { return isPhone.Validate(value) }
func IsINN(value string) string      { return isINN.Validate(value) }

// Pattern returns a Validator reporting message when re does not match.
// An empty message falls back to MsgInvalidFormat so a failure can never
// look like success.
func Pattern(re *regexp.Regexp, message string) Validator {
	return Matches(re, message).Validate
}

// ValidateField runs validators in order and returns the first failure
// message. Validators after the first failure are not called.
func ValidateField(value string, validators ...Validator) string {
	for _, v := range validators {
		if msg := v(value); msg != "" {
			return msg
		}
	}
	return ""
}

// Package validator provides the field-level checks used by web forms:
// required, email, digits-only, Russian phone display format and INN, plus
// arbitrary regular expressions and predicates.
//
// There are two ways to use it. Standalone validators are plain functions
// of type Validator that return an empty string for a valid value and a
// message otherwise; ValidateField runs a list of them and stops at the
// first failure:
//
//	msg := validator.ValidateField(value, validator.IsRequired, validator.IsEmail)
//	if msg != "" {
//	    // show msg next to the input
//	}
//
// Rule values carry the same predicates together with a message and a
// translation key. They are the building blocks of the schema package and
// produce ValidationError values that the i18n package can localise.
//
// # Error Handling
//
// Invalid input never panics; it is reported through messages.
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Passing a nil regexp to Matches or Pattern is a programming
// error and panics with ErrNilPattern.
//
// Default messages are in Russian (see MsgRequired and friends) because the
// forms they back are Russian-language; use the translation keys to render
// them in another locale.
package validator

// Package schema is a small fluent builder for form validation in the
// style of popular schema libraries:
//
//	var company = schema.Object().Shape(schema.Shape{
//	    "name":  schema.String().Required("Введите имя"),
//	    "email": schema.String().Email(""),
//	    "inn":   schema.String().Required("Введите ИНН").Number("").INN(""),
//	    "phone": schema.String().Required("Введите телефон").Phone(""),
//	})
//
//	errs := company.Validate(map[string]string{"name": "ООО Ромашка"})
//	// errs["name"] == "", errs["inn"] == "Введите ИНН", ...
//
// A StringSchema is an ordered rule chain; the first failing rule decides
// the message and later rules are not evaluated. An ObjectSchema applies one
// chain per field and always reports every declared field, using an empty
// string for valid ones. Check returns the same outcome as a
// validator.ValidationErrors error carrying translation keys.
//
// Chains are built once, typically at package initialisation, and must not
// be extended while they are being used for validation.
package schema

package forms

import (
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

// Company form field names.
const (
	FieldName  = "name"
	FieldEmail = "email"
	FieldINN   = "inn"
	FieldPhone = "phone"
)

// companyInputs cleans raw company form values before validation.
var companyInputs = map[string]func(string) string{
	FieldName:  sanitizer.PlainText,
	FieldEmail: sanitizer.NormalizeEmail,
	FieldPhone: sanitizer.Compose(sanitizer.NormalizePhone, sanitizer.FormatPhone),
}

// CompanySchema describes the company registration form. Email has no
// required rule: an empty value fails the format check instead.
func CompanySchema() *schema.ObjectSchema {
	return schema.Object().Shape(schema.Shape{
		FieldName: schema.String().
			Required("Введите имя").WithKey("forms.company.name.required"),
		FieldEmail: schema.String().
			Email(""),
		FieldINN: schema.String().
			Required("Введите ИНН").WithKey("forms.company.inn.required").
			Number("").
			INN(""),
		FieldPhone: schema.String().
			Required("Введите телефон").WithKey("forms.company.phone.required").
			Phone(""),
	})
}

package validator

// Default messages returned by the built-in rules. They match the copy used
// by the web forms, so server-side and client-side errors read the same.
const (
	MsgRequired      = "Поле обязательно"
	MsgEmail         = "Неверный формат email"
	MsgNumber        = "Должно быть числом"
	MsgPhone         = "формат +7 (XXX) XXX-XX-XX"
	MsgINN           = "ИНН должен быть либо 10 либо 12 цифр"
	MsgInvalidFormat = "Неверный формат"
)

// Translation keys attached to ValidationError values.
const (
	KeyRequired = "validation.required"
	KeyEmail    = "validation.email"
	KeyNumber   = "validation.number"
	KeyPhone    = "validation.phone"
	KeyINN      = "validation.inn"
	KeyPattern  = "validation.pattern"
)

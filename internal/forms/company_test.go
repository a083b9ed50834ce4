package forms_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/internal/forms"
	"github.com/dmitrymomot/formkit/pkg/schema"
)

func TestCompanySchema(t *testing.T) {
	t.Parallel()
	s := forms.CompanySchema()

	assert.Equal(t, []string{"email", "inn", "name", "phone"}, s.Fields())

	result := s.Validate(map[string]string{
		"name":  "ООО Ромашка",
		"email": "info@romashka.ru",
		"inn":   "500100732259",
		"phone": "+7 (999) 123-45-67",
	})
	assert.True(t, schema.Valid(result))

	result = s.Validate(map[string]string{"inn": "ab", "phone": "79991234567"})
	assert.Equal(t, map[string]string{
		"name":  "Введите имя",
		"email": "Неверный формат email",
		"inn":   "Должно быть числом",
		"phone": "формат +7 (XXX) XXX-XX-XX",
	}, result)
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	tr, err := forms.NewTranslator(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "ru"}, tr.SupportedLanguages())
	assert.Equal(t, "ru", tr.DefaultLanguage())
	assert.Equal(t, "Введите ИНН", tr.T("ru", "forms.company.inn.required"))
	assert.Equal(t, "INN is required", tr.T("en", "validation.required", "field", "INN"))

	tr, err = forms.NewTranslator(context.Background(), nil, "en")
	require.NoError(t, err)
	assert.Equal(t, "en", tr.DefaultLanguage())
	assert.Equal(t, "Enter a name", tr.T("de", "forms.company.name.required"))
}

func TestService_Company(t *testing.T) {
	t.Parallel()
	tr, err := forms.NewTranslator(context.Background(), nil, "")
	require.NoError(t, err)
	svc := forms.NewService(tr)

	t.Run("markup-only name is empty", func(t *testing.T) {
		t.Parallel()
		in := map[string]string{
			"name":  "<b> </b>",
			"email": "info@romashka.ru",
			"inn":   "7707083893",
			"phone": "8 999 123 45 67",
		}
		got := svc.Company("ru", in)
		want := forms.FormResult{
			Valid:  false,
			Errors: map[string]string{"name": "Введите имя", "email": "", "inn": "", "phone": ""},
			Phone:  "+7 (999) 123-45-67",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Company() mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "8 999 123 45 67", in["phone"], "input must not be modified")
	})

	t.Run("email is normalized before validation", func(t *testing.T) {
		t.Parallel()
		got := svc.Company("ru", map[string]string{
			"name":  "ООО Ромашка",
			"email": "  Info..Sales@Romashka.RU ",
			"inn":   "7707083893",
			"phone": "+7 999 123 45 67",
		})
		assert.True(t, got.Valid, got.Errors)
	})

	t.Run("nil values", func(t *testing.T) {
		t.Parallel()
		got := svc.Company("en", nil)
		want := map[string]string{
			"name":  "Enter a name",
			"email": "Invalid email format",
			"inn":   "Enter an INN",
			"phone": "Enter a phone number",
		}
		if diff := cmp.Diff(want, got.Errors); diff != "" {
			t.Errorf("Company() errors mismatch (-want +got):\n%s", diff)
		}
		assert.False(t, got.Valid)
	})
}

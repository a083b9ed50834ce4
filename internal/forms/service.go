package forms

import (
	"errors"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strconv"

	"github.com/dmitrymomot/formkit/pkg/binder"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/keyfilter"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
	"github.com/dmitrymomot/formkit/pkg/schema"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Service validates form submissions and formats phone input over HTTP.
type Service struct {
	translator   *i18n.Translator
	company      *schema.ObjectSchema
	log          *slog.Logger
	keyMaxLength int
	limiter      *ratelimiter.Bucket
}

func NewService(translator *i18n.Translator, opts ...Option) *Service {
	s := &Service{
		translator:   translator,
		company:      CompanySchema(),
		log:          slog.New(slog.DiscardHandler),
		keyMaxLength: DefaultKeyMaxLength,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("forms"))
	return s
}

// ValidateCompany handles POST /forms/company.
func (s *Service) ValidateCompany(w http.ResponseWriter, r *http.Request) {
	values, ok := s.bind(w, r)
	if !ok {
		return
	}

	lang := i18n.GetLocale(r.Context())
	result := s.Company(lang, values)

	status := http.StatusOK
	if !result.Valid {
		status = http.StatusUnprocessableEntity
	}

	s.log.InfoContext(r.Context(), "form validated",
		logger.Form("company"),
		logger.Locale(lang),
		slog.Bool("valid", result.Valid),
		logger.InvalidFields(invalidFields(result.Errors)),
		slog.String("phone", sanitizer.MaskPhone(result.Phone)),
	)
	writeJSON(w, status, result)
}

// Company validates a company form submission with messages in lang. The
// name is reduced to plain single-line text, the email is normalized and the
// phone is normalized and formatted before the rules run; values is not
// modified.
func (s *Service) Company(lang string, values map[string]string) FormResult {
	values = maps.Clone(values)
	if values == nil {
		values = make(map[string]string, 2)
	}
	for field, clean := range companyInputs {
		values[field] = clean(values[field])
	}

	result := FormResult{
		Valid:  true,
		Errors: make(map[string]string, len(s.company.Fields())),
		Phone:  values[FieldPhone],
	}
	for _, field := range s.company.Fields() {
		result.Errors[field] = ""
	}

	for _, verr := range validator.ExtractValidationErrors(s.company.Check(values)) {
		result.Valid = false
		result.Errors[verr.Field] = s.localize(lang, "company", verr)
	}
	return result
}

// FormatPhone handles POST /phone/format.
func (s *Service) FormatPhone(w http.ResponseWriter, r *http.Request) {
	values, ok := s.bind(w, r)
	if !ok {
		return
	}
	normalized := sanitizer.NormalizePhone(values["value"])
	writeJSON(w, http.StatusOK, PhoneResult{
		Normalized: normalized,
		Formatted:  sanitizer.FormatPhone(normalized),
	})
}

// FilterKey handles POST /keys/filter, deciding whether a key press on a
// numeric input should be let through.
func (s *Service) FilterKey(w http.ResponseWriter, r *http.Request) {
	values, ok := s.bind(w, r)
	if !ok {
		return
	}

	maxLength := s.keyMaxLength
	if raw := values["max_length"]; raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, "bad_request", err)
			return
		}
		maxLength = n
	}

	ev := &keyfilter.KeyEvent{
		KeyName: values["key"],
		Ctrl:    values["ctrl"] == "true",
		Meta:    values["meta"] == "true",
		Input:   values["value"],
	}
	keyfilter.FilterKey(ev, maxLength)
	writeJSON(w, http.StatusOK, KeyResult{Allowed: !ev.Prevented})
}

func invalidFields(errs map[string]string) []string {
	fields := make([]string, 0, len(errs))
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		if errs[field] != "" {
			fields = append(fields, field)
		}
	}
	return fields
}

func (s *Service) bind(w http.ResponseWriter, r *http.Request) (map[string]string, bool) {
	values, err := binder.Values(r)
	switch {
	case err == nil:
		return values, true
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		s.fail(w, r, http.StatusUnsupportedMediaType, "unsupported_media_type", err)
	case errors.Is(err, binder.ErrBodyTooLarge):
		s.fail(w, r, http.StatusRequestEntityTooLarge, "bad_request", err)
	default:
		s.fail(w, r, http.StatusBadRequest, "bad_request", err)
	}
	return nil, false
}

func (s *Service) fail(w http.ResponseWriter, r *http.Request, status int, code string, err error) {
	s.log.WarnContext(r.Context(), "request rejected",
		logger.Error(err),
		slog.Int("status_code", status),
		slog.String("path", r.URL.Path),
	)
	lang := i18n.GetLocale(r.Context())
	writeJSON(w, status, errorBody{Error: ErrorDetail{
		Code:    code,
		Message: s.translator.Td(lang, "errors."+code, http.StatusText(status)),
	}})
}

// localize renders a validation error in lang, substituting the translated
// field label for %{field}.
func (s *Service) localize(lang, form string, verr validator.ValidationError) string {
	values := maps.Clone(verr.TranslationValues)
	if values == nil {
		values = make(map[string]any, 1)
	}
	values["field"] = s.translator.Td(lang, "forms."+form+".fields."+verr.Field, verr.Field)
	return s.translator.Localize(lang, verr.TranslationKey, verr.Message, values)
}

package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing better can be negotiated.
const DefaultLanguage = "ru"

// maxAcceptLanguageLength caps the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

// LanguageMatcher negotiates a supported language from Accept-Language
// style input using BCP 47 matching, so "en-US" resolves to "en" and
// weights are honoured.
type LanguageMatcher struct {
	supported   []string
	matcher     language.Matcher
	defaultLang string
}

// NewLanguageMatcher builds a matcher over supported. Codes that are not
// valid BCP 47 tags are ignored.
func NewLanguageMatcher(supported []string, defaultLang string) *LanguageMatcher {
	m := &LanguageMatcher{defaultLang: defaultLang}
	tags := make([]language.Tag, 0, len(supported))
	for _, code := range supported {
		tag, err := language.Parse(code)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		m.supported = append(m.supported, strings.ToLower(code))
	}
	if len(tags) > 0 {
		m.matcher = language.NewMatcher(tags)
	}
	return m
}

// Lookup returns the supported code best matching header, or false when
// nothing matches.
func (m *LanguageMatcher) Lookup(header string) (string, bool) {
	if m.matcher == nil {
		return "", false
	}
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return "", false
	}

	_, idx, conf := m.matcher.Match(desired...)
	if conf == language.No {
		return "", false
	}
	return m.supported[idx], true
}

// Match is Lookup falling back to the default language.
func (m *LanguageMatcher) Match(header string) string {
	if lang, ok := m.Lookup(header); ok {
		return lang
	}
	return m.defaultLang
}

// ParseAcceptLanguage returns the supported language that best matches the
// header, or defaultLang.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	return NewLanguageMatcher(supported, defaultLang).Match(header)
}

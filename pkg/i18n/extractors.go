package i18n

import (
	"net/http"
	"strings"
)

// LangExtractor determines the preferred language of a request. An empty
// result lets the middleware apply its default.
type LangExtractor func(r *http.Request) string

// ExtractorConfig configures DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" cookie, the "lang" query
// parameter and the Accept-Language header, returning the first value that
// matches a language known to m.
func DefaultLangExtractor(m *LanguageMatcher, opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		if cookie, err := r.Cookie(cfg.CookieName); err == nil {
			if lang, ok := m.Lookup(strings.TrimSpace(cookie.Value)); ok {
				return lang
			}
		}

		if lang, ok := m.Lookup(r.URL.Query().Get(cfg.QueryParamName)); ok {
			return lang
		}

		if lang, ok := m.Lookup(r.Header.Get("Accept-Language")); ok {
			return lang
		}

		return ""
	}
}

package i18n

import "net/http"

// Middleware stores the language picked by extr in the request context,
// falling back to defaultLang. Read it back with GetLocale.
func Middleware(extr LangExtractor, defaultLang string) func(http.Handler) http.Handler {
	if defaultLang == "" {
		defaultLang = DefaultLanguage
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = defaultLang
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

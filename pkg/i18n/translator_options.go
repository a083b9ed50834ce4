package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one lacks a
// key or cannot be negotiated.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether T returns the key for missing
// translations. Default is true.
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToKey = fallback
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging logs missing keys at warn level.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.missingLogMode = log
	}
}

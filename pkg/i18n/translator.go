package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"
)

// Translator resolves dot-separated keys to localized strings.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
	matcher        *LanguageMatcher
	mu             sync.RWMutex
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.DiscardHandler),
	}

	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}

	for lang, trans := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguageCode
		}
		if trans == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.matcher = NewLanguageMatcher(t.orderedLanguages(), t.defaultLang)
	t.logger.InfoContext(ctx, "Translations loaded", "languages", t.supportedLanguages())
	return t, nil
}

func (t *Translator) supportedLanguages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// orderedLanguages puts the default language first so the matcher prefers it on ties.
func (t *Translator) orderedLanguages() []string {
	langs := t.supportedLanguages()
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}
	return langs
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.supportedLanguages()
}

func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Matcher returns the language matcher over the loaded languages, preferring
// the default language on ties.
func (t *Translator) Matcher() *LanguageMatcher {
	return t.matcher
}

// Match picks the best supported language for an Accept-Language header
// value, falling back to the default language.
func (t *Translator) Match(header string) string {
	return t.matcher.Match(header)
}

// getTranslation walks a nested map using a dot-separated key.
func (t *Translator) getTranslation(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

// lookup finds key for lang, then for the default language.
func (t *Translator) lookup(lang, key string) (string, bool) {
	for _, l := range []string{lang, t.defaultLang} {
		langMap, ok := t.translations[l]
		if !ok {
			continue
		}
		if val, ok := t.getTranslation(langMap, key); ok {
			if s, ok := val.(string); ok {
				return s, true
			}
			if t.missingLogMode {
				t.logger.Warn("Translation is not a string", "lang", l, "key", key, "type", fmt.Sprintf("%T", val))
			}
			return "", false
		}
	}
	if t.missingLogMode {
		t.logger.Warn("Translation not found", "lang", lang, "key", key)
	}
	return "", false
}

// HasTranslation reports whether lang itself defines key.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = t.getTranslation(langMap, key)
	return ok
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf substitutes %{name} placeholders; unknown ones are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// pairs converts key, value, key, value... into a map; an odd tail is ignored.
func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

// T translates key for lang with %{name} substitution from key/value args:
//
//	translator.T("ru", "validation.required", "field", "email")
//
// Missing keys fall back to the default language, then to the key itself
// (or an empty string with WithFallbackToKey(false)).
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.lookup(lang, key); ok {
		return namedSprintf(s, pairs(args))
	}
	if t.fallbackToKey {
		return namedSprintf(key, pairs(args))
	}
	return ""
}

// Td is T with an explicit fallback instead of the key.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if key != "" {
		if s, ok := t.lookup(lang, key); ok {
			return namedSprintf(s, pairs(args))
		}
	}
	return namedSprintf(defaultValue, pairs(args))
}

// Tc translates key using the locale stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Localize renders a message identified by key with arbitrary values, as
// carried by validation errors. An empty or unknown key yields fallback.
func (t *Translator) Localize(lang, key, fallback string, values map[string]any) string {
	args := make([]string, 0, len(values)*2)
	for k, v := range values {
		args = append(args, k, fmt.Sprint(v))
	}
	return t.Td(lang, key, fallback, args...)
}

// Package i18n localizes user-facing messages, most importantly validation
// errors.
//
// Translations are nested maps keyed by language code and loaded through a
// TranslationAdapter: MapAdapter for in-memory data and FSAdapter for a
// directory of YAML or JSON files, usually embedded with embed.FS:
//
//	//go:embed locales
//	var locales embed.FS
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales", nil),
//	    i18n.WithDefaultLanguage("ru"),
//	)
//
//	tr.T("en", "validation.required")            // "This field is required"
//	tr.Localize("en", verr.TranslationKey, verr.Message, verr.TranslationValues)
//
// Placeholders use the %{name} syntax. A key missing in the requested
// language is looked up in the default language before falling back.
//
// Language negotiation is done with golang.org/x/text/language through
// LanguageMatcher; Middleware and DefaultLangExtractor put the negotiated
// language into the request context.
package i18n

package forms

import (
	"context"
	"embed"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewTranslator loads the bundled form translations.
func NewTranslator(ctx context.Context, log *slog.Logger, defaultLang string) (*i18n.Translator, error) {
	opts := []i18n.Option{
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	}
	if defaultLang != "" {
		opts = append(opts, i18n.WithDefaultLanguage(defaultLang))
	}
	return i18n.NewTranslator(ctx, i18n.NewFSAdapter(locales, "locales", nil), opts...)
}

package logger

import (
	"log/slog"
	"time"
)

// Error records err under "error". Nil yields an empty Attr, which slog drops.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr {
	return slog.String("component", name)
}

func Form(name string) slog.Attr {
	return slog.String("form", name)
}

func Locale(lang string) slog.Attr {
	return slog.String("locale", lang)
}

func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// InvalidFields records the names of fields that failed validation.
func InvalidFields(fields []string) slog.Attr {
	return slog.Any("invalid_fields", fields)
}

package clientip

import (
	"context"
	"log/slog"
	"net/http"
)

type ctxKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ctxKey{}).(string)
	return ip
}

// Middleware stores the client IP of each request in its context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), GetIP(r))))
	})
}

// LoggerExtractor adds "client_ip" to log records written with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		ip := FromContext(ctx)
		return slog.String("client_ip", ip), ip != ""
	}
}

package requestid

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header carries the request ID in both directions.
const Header = "X-Request-ID"

const maxLength = 128

var allowed = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Middleware reuses a well-formed incoming X-Request-ID or generates a UUID,
// echoes it on the response and stores it in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !Valid(id) {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}

// Valid reports whether id may be propagated as is.
func Valid(id string) bool {
	return id != "" && len(id) <= maxLength && allowed.MatchString(id)
}

// LoggerExtractor adds "request_id" to log records written with a request context.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		id := FromContext(ctx)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}

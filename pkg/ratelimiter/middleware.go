package ratelimiter

import (
	"net/http"
	"strconv"
)

// KeyFunc picks the bucket for a request. An empty key skips limiting.
type KeyFunc func(r *http.Request) string

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	onLimited http.HandlerFunc
	onError   func(w http.ResponseWriter, r *http.Request, err error)
}

// WithLimitedHandler renders the response for rejected requests.
// Rate limit headers are already set when it runs.
func WithLimitedHandler(h http.HandlerFunc) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onLimited = h
		}
	}
}

// WithErrorHandler renders the response when the store fails.
func WithErrorHandler(h func(w http.ResponseWriter, r *http.Request, err error)) MiddlewareOption {
	return func(c *middlewareConfig) {
		if h != nil {
			c.onError = h
		}
	}
}

// Middleware limits requests per key and reports the bucket state in
// X-RateLimit-* headers. Rejected requests get Retry-After.
func Middleware(b *Bucket, key KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := &middlewareConfig{
		onLimited: func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		},
		onError: func(w http.ResponseWriter, _ *http.Request, _ error) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k := key(r)
			if k == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := b.Allow(r.Context(), k)
			if err != nil {
				cfg.onError(w, r, err)
				return
			}

			h := w.Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
			h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

			if !res.Allowed() {
				h.Set("Retry-After", strconv.Itoa(max(1, int(res.RetryAfter().Seconds()))))
				cfg.onLimited(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

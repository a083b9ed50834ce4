package forms

import (
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

// DefaultKeyMaxLength applies to key filtering requests without max_length.
const DefaultKeyMaxLength = 11

// Option configures a Service.
type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithKeyMaxLength sets the input length limit used when a key filtering
// request does not carry one. n <= 0 disables the limit.
func WithKeyMaxLength(n int) Option {
	return func(s *Service) { s.keyMaxLength = n }
}

// WithRateLimiter throttles form submissions per client IP.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Service) { s.limiter = b }
}

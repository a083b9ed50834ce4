package ratelimiter

import (
	"context"
	"time"
)

// Config describes a token bucket: Capacity tokens at most, RefillRate
// tokens added every RefillInterval.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"20"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"3s"`
}

// Result is the outcome of a single check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the checked request fits the bucket. A negative
// Remaining means it did not.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter is zero for allowed requests.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Store keeps bucket state. ConsumeTokens refills the bucket for key and
// takes tokens from it; zero tokens only reports the state.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

package ratelimiter

import (
	"context"
	"fmt"
)

// Bucket is a token bucket limiter over a Store.
type Bucket struct {
	store Store
	cfg   Config
}

func NewBucket(store Store, cfg Config) (*Bucket, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Bucket{store: store, cfg: cfg}, nil
}

func (b *Bucket) Allow(ctx context.Context, key string) (Result, error) {
	return b.AllowN(ctx, key, 1)
}

func (b *Bucket) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.consume(ctx, key, n)
}

// Status returns the bucket state for key without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (Result, error) {
	return b.consume(ctx, key, 0)
}

func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) consume(ctx context.Context, key string, n int) (Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: b.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

func (c Config) validate() error {
	switch {
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	case c.RefillRate <= 0:
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	case c.RefillInterval <= 0:
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}

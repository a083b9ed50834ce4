package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *clock) {
	t.Helper()
	clk := &clock{now: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := ratelimiter.NewMemoryStore(
		ratelimiter.WithCleanupInterval(0),
		ratelimiter.WithClock(clk.Now),
	)
	t.Cleanup(store.Close)
	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, clk
}

func TestBucket_Allow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	b, clk := newBucket(t, ratelimiter.Config{Capacity: 2, RefillRate: 1, RefillInterval: time.Second})

	for want := 1; want >= 0; want-- {
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 2, res.Limit)
		assert.Zero(t, res.RetryAfter())
	}

	res, err := b.Allow(ctx, "ip")
	require.NoError(t, err)
	assert.False(t, res.Allowed())

	t.Run("rejected requests do not consume", func(t *testing.T) {
		status, err := b.Status(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, 0, status.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		res, err := b.Allow(ctx, "other")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Remaining)
	})

	t.Run("refills over time up to capacity", func(t *testing.T) {
		clk.Advance(time.Second)
		res, err := b.Allow(ctx, "ip")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
		assert.Equal(t, 0, res.Remaining)

		clk.Advance(time.Hour)
		status, err := b.Status(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, 2, status.Remaining)
	})

	t.Run("reset", func(t *testing.T) {
		_, err := b.AllowN(ctx, "ip", 2)
		require.NoError(t, err)
		require.NoError(t, b.Reset(ctx, "ip"))
		status, err := b.Status(ctx, "ip")
		require.NoError(t, err)
		assert.Equal(t, 2, status.Remaining)
	})
}

func TestBucket_AllowN_Invalid(t *testing.T) {
	t.Parallel()
	b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Second})
	_, err := b.AllowN(context.Background(), "k", 0)
	assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
}

func TestNewBucket_InvalidConfig(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	for _, cfg := range []ratelimiter.Config{
		{Capacity: 0, RefillRate: 1, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 0, RefillInterval: time.Second},
		{Capacity: 1, RefillRate: 1},
	} {
		_, err := ratelimiter.NewBucket(store, cfg)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
	}
}

func TestMemoryStore_CloseTwice(t *testing.T) {
	t.Parallel()
	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	assert.NotPanics(t, func() {
		store.Close()
		store.Close()
	})
}

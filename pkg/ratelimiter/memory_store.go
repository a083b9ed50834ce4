package ratelimiter

import (
	"context"
	"sync"
	"time"
)

const staleAfter = time.Hour

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore keeps buckets in process memory. Buckets idle for an hour are
// dropped by a background sweep; call Close to stop it.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	sweepEvery time.Duration
	stop       chan struct{}
	stopOnce   sync.Once
}

type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often idle buckets are swept. Zero disables
// the sweep.
func WithCleanupInterval(d time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) { s.sweepEvery = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) MemoryStoreOption {
	return func(s *MemoryStore) {
		if now != nil {
			s.now = now
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		buckets:    make(map[string]*bucket),
		now:        time.Now,
		sweepEvery: 5 * time.Minute,
		stop:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sweepEvery > 0 {
		go s.sweep()
	}
	return s
}

func (s *MemoryStore) ConsumeTokens(_ context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{tokens: cfg.Capacity, lastRefill: now}
		s.buckets[key] = b
	}

	// capped so a long idle period cannot overflow the token count
	maxIntervals := int64(cfg.Capacity/cfg.RefillRate + 1)
	if intervals := min(int64(now.Sub(b.lastRefill)/cfg.RefillInterval), maxIntervals); intervals > 0 {
		b.tokens = min(b.tokens+int(intervals)*cfg.RefillRate, cfg.Capacity)
		b.lastRefill = now
	}

	b.lastAccess = now
	resetAt := b.lastRefill.Add(cfg.RefillInterval)
	// a denied request does not dig the bucket deeper
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens
	return b.tokens, resetAt, nil
}

func (s *MemoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.buckets, key)
	return nil
}

// Close stops the background sweep. Safe to call more than once.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(s.sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.removeStale()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) removeStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, b := range s.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(s.buckets, key)
		}
	}
}

// Package ratelimiter implements a token bucket limiter with an in-memory
// store and an HTTP middleware.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//	    Capacity: 20, RefillRate: 1, RefillInterval: 3 * time.Second,
//	})
//	r.With(ratelimiter.Middleware(bucket, byIP)).Post("/forms/company", h)
//
// A bucket starts full. Every RefillInterval it regains RefillRate tokens up
// to Capacity, and each request takes one. Rejected requests do not consume
// tokens.
package ratelimiter

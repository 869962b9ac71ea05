// Package ratelimiter implements a token bucket limiter with an in-memory
// store and an HTTP middleware.
//
// The live checklist endpoint is hit on every keystroke, so it is limited
// per client address:
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, cfg)
//	r.With(ratelimiter.Middleware(bucket, clientip.Key)).Post("/feedback", h)
package ratelimiter

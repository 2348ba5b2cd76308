package tmdb

import (
	"sync"
	"time"
)

// rateLimiter implements a simple sliding window rate limiter guarding the
// TMDB API. It never fails; wait blocks until a request slot is available.
type rateLimiter struct {
	mu          sync.Mutex
	requests    []time.Time
	maxRequests int
	window      time.Duration
}

func newRateLimiter(maxRequests int, window time.Duration) *rateLimiter {
	return &rateLimiter{
		maxRequests: maxRequests,
		window:      window,
		requests:    make([]time.Time, 0, maxRequests),
	}
}

func (r *rateLimiter) wait() {
	r.mu.Lock()

	now := time.Now()
	r.prune(now)

	if len(r.requests) < r.maxRequests {
		r.requests = append(r.requests, now)
		r.mu.Unlock()
		return
	}

	// Window is full; sleep until the oldest request expires, with a small
	// buffer so the slot has actually opened when we wake.
	oldest := r.requests[0]
	waitTime := r.window - now.Sub(oldest) + 10*time.Millisecond
	r.mu.Unlock()

	time.Sleep(waitTime)

	r.mu.Lock()
	now = time.Now()
	r.prune(now)
	r.requests = append(r.requests, now)
	r.mu.Unlock()
}

// prune drops requests that have fallen out of the window. Caller holds mu.
func (r *rateLimiter) prune(now time.Time) {
	cutoff := now.Add(-r.window)
	valid := make([]time.Time, 0, r.maxRequests)
	for _, req := range r.requests {
		if req.After(cutoff) {
			valid = append(valid, req)
		}
	}
	r.requests = valid
}

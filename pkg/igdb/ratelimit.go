package igdb

import (
	"sync"
	"time"
)

// RateLimiter is a single window counter matching the catalog's request
// budget (4 requests per second on the free tier).
type RateLimiter struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
	mu            sync.Mutex
}

// NewRateLimiter creates a limiter allowing limit calls per interval.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:         limit,
		resetInterval: interval,
		lastReset:     time.Now(),
	}
}

// Wait blocks until the current window has budget for one more call.
func (r *RateLimiter) Wait() {
	for {
		r.mu.Lock()

		now := time.Now()
		if now.Sub(r.lastReset) >= r.resetInterval {
			r.count = 0
			r.lastReset = now
		}

		if r.count < r.limit {
			r.count++
			r.mu.Unlock()
			return
		}

		waitTill := r.resetInterval - now.Sub(r.lastReset)
		r.mu.Unlock()

		time.Sleep(waitTill)
	}
}

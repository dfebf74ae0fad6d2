// Package ratelimiter caps the frequency of outbound calls such as feed
// scrapes.
package ratelimiter

import (
	"log/slog"
	"time"
)

// RateLimiterInterface limits the rate of repeated operations.
type RateLimiterInterface interface {
	WaitIfNeeded()
}

// RateLimiter allows at most limit calls per interval, sleeping callers
// that exceed it until the window resets.
type RateLimiter struct {
	limit     int
	interval  time.Duration
	count     int
	lastReset time.Time
}

// NewRateLimiter creates a new RateLimiter instance.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// WaitIfNeeded blocks until the current window has room for one more call.
func (rl *RateLimiter) WaitIfNeeded() {
	now := time.Now()
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	rl.count++
	if rl.count > rl.limit {
		sleep := rl.interval - now.Sub(rl.lastReset)
		if sleep > 0 {
			slog.Info("rate limit hit, sleeping", "limit", rl.limit, "sleep", sleep)
			time.Sleep(sleep)
		}
		rl.count = 1
		rl.lastReset = time.Now()
	}
}

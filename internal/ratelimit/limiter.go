// Package ratelimit implements sliding-window request limiting keyed by
// client address, configured per endpoint through operation metadata.
package ratelimit

import (
	"context"
	"time"
)

// Store defines the interface for rate limit data storage.
type Store interface {
	// Record records a request and returns the count of requests in the
	// current window, pruning expired entries.
	Record(ctx context.Context, key string, window time.Duration) (count int64, err error)
}

// LimitConfig is a single window/maximum pair.
type LimitConfig struct {
	Window time.Duration
	Max    int64
}

// Limiter defines the interface for rate limiting.
type Limiter interface {
	// Allow checks if a request from the given key should be allowed under
	// the given limit.
	Allow(ctx context.Context, key string, limit LimitConfig) (allowed bool, err error)
}

// SlidingWindowLimiter implements rate limiting using a sliding window
// algorithm over a Store.
type SlidingWindowLimiter struct {
	store Store
}

// NewSlidingWindowLimiter creates a new sliding window rate limiter.
func NewSlidingWindowLimiter(store Store) *SlidingWindowLimiter {
	return &SlidingWindowLimiter{store: store}
}

func (l *SlidingWindowLimiter) Allow(ctx context.Context, key string, limit LimitConfig) (bool, error) {
	count, err := l.store.Record(ctx, key, limit.Window)
	if err != nil {
		return false, err
	}

	return count <= limit.Max, nil
}

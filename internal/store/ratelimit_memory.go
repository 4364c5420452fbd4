package store

import (
	"context"
	"sync"
	"time"
)

// RateLimitMemoryStore implements ratelimit.Store on per-key slices of
// request timestamps. Like the memory repositories it serves tests and
// single-process runs; production wiring uses the Redis store so counts
// survive restarts and are shared across replicas.
type RateLimitMemoryStore struct {
	mu      sync.Mutex
	windows map[string][]time.Time
}

// NewRateLimitMemoryStore creates an empty in-memory rate limit store.
func NewRateLimitMemoryStore() *RateLimitMemoryStore {
	return &RateLimitMemoryStore{
		windows: make(map[string][]time.Time),
	}
}

func (s *RateLimitMemoryStore) Record(_ context.Context, key string, window time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-window)

	// Prune expired timestamps in place before counting this request.
	kept := s.windows[key][:0]
	for _, ts := range s.windows[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	kept = append(kept, now)
	s.windows[key] = kept

	return int64(len(kept)), nil
}

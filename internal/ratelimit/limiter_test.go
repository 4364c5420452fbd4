package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/khushikhattar/ShortSecure/internal/ratelimit"
	"github.com/khushikhattar/ShortSecure/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlidingWindowLimiter(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(store.NewRateLimitMemoryStore())
	ctx := context.Background()
	limit := ratelimit.LimitConfig{Window: time.Minute, Max: 3}

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "key", limit)
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, err := limiter.Allow(ctx, "key", limit)
	require.NoError(t, err)
	assert.False(t, allowed, "request over the maximum should be denied")

	// A different key has its own window.
	allowed, err = limiter.Allow(ctx, "other", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestSlidingWindowLimiter_WindowSlides(t *testing.T) {
	limiter := ratelimit.NewSlidingWindowLimiter(store.NewRateLimitMemoryStore())
	ctx := context.Background()
	limit := ratelimit.LimitConfig{Window: 30 * time.Millisecond, Max: 1}

	allowed, err := limiter.Allow(ctx, "key", limit)
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "key", limit)
	require.NoError(t, err)
	assert.False(t, allowed)

	time.Sleep(limit.Window + 20*time.Millisecond)

	allowed, err = limiter.Allow(ctx, "key", limit)
	require.NoError(t, err)
	assert.True(t, allowed)
}

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitMemoryStore_CountsWithinWindow(t *testing.T) {
	s := NewRateLimitMemoryStore()
	ctx := context.Background()

	for want := int64(1); want <= 5; want++ {
		count, err := s.Record(ctx, "key", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestRateLimitMemoryStore_KeysAreIndependent(t *testing.T) {
	s := NewRateLimitMemoryStore()
	ctx := context.Background()

	_, err := s.Record(ctx, "a", time.Minute)
	require.NoError(t, err)

	count, err := s.Record(ctx, "b", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRateLimitMemoryStore_ExpiresOldEntries(t *testing.T) {
	s := NewRateLimitMemoryStore()
	ctx := context.Background()

	const window = 30 * time.Millisecond

	for i := 0; i < 3; i++ {
		_, err := s.Record(ctx, "key", window)
		require.NoError(t, err)
	}

	time.Sleep(window + 20*time.Millisecond)

	count, err := s.Record(ctx, "key", window)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

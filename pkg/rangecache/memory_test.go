package rangecache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	start := time.Date(2026, 10, 1, 14, 30, 0, 0, time.UTC)
	end := time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "windows:2026-10-01:2026-10-31", Key("windows", start, end))
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	cache := NewMemoryWithClock(func() time.Time { return now })

	cache.Set(ctx, "k", []byte("payload"), time.Hour)

	got, ok := cache.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)

	// One minute before expiry: still a hit
	now = now.Add(59 * time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.True(t, ok)

	// Past expiry: miss, and the entry is evicted
	now = now.Add(2 * time.Minute)
	_, ok = cache.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Len())
}

func TestMemoryInvalidateAll(t *testing.T) {
	ctx := context.Background()
	cache := NewMemory()

	cache.Set(ctx, "a", []byte("1"), time.Hour)
	cache.Set(ctx, "b", []byte("2"), time.Hour)
	require.Equal(t, 2, cache.Len())

	cache.InvalidateAll(ctx)

	assert.Equal(t, 0, cache.Len())
	_, ok := cache.Get(ctx, "a")
	assert.False(t, ok)
}

func TestMemoryMissOnUnknownKey(t *testing.T) {
	cache := NewMemory()
	_, ok := cache.Get(context.Background(), "nothing")
	assert.False(t, ok)
}

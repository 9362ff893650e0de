package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutThenGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	store.Set(ctx, "k", []byte("payload"))

	got, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), got)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	_, ok := store.Get(context.Background(), "never-set")
	assert.False(t, ok)
}

func TestMemoryStoreExpiryIsLazy(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	now := time.Unix(1_700_000_000, 0)
	store.SetClock(func() time.Time { return now })
	store.Set(ctx, "k", []byte("payload"))

	// Just inside the window: still fresh.
	now = now.Add(DefaultTTL)
	_, ok := store.Get(ctx, "k")
	assert.True(t, ok)

	// Past the window: absent, and the entry is purged by the lookup.
	now = now.Add(time.Second)
	_, ok = store.Get(ctx, "k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreOverwriteRefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(DefaultTTL)

	now := time.Unix(1_700_000_000, 0)
	store.SetClock(func() time.Time { return now })
	store.Set(ctx, "k", []byte("old"))

	now = now.Add(30 * time.Minute)
	store.Set(ctx, "k", []byte("new"))

	// 50 minutes after the rewrite, 80 after the original: still fresh.
	now = now.Add(50 * time.Minute)
	got, ok := store.Get(ctx, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

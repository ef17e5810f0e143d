package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheSetGet(t *testing.T) {
	c := NewMemoryCache("commerce")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}

func TestMemoryCacheMissReturnsEmpty(t *testing.T) {
	c := NewMemoryCache("commerce")

	got, err := c.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache("commerce")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	got, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateKey(t *testing.T) {
	c := NewMemoryCache("commerce")
	assert.Equal(t, "commerce:create_order:abc", c.GenerateKey("create_order", "abc"))
}

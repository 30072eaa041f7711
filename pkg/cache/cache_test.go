package cache_test

import (
	"testing"
	"time"

	"github.com/PasanSasmika/Fashion-Backend/pkg/cache"
	"github.com/stretchr/testify/assert"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("P1", "Denim Jacket")

	got, ok := c.Get("P1")
	assert.True(t, ok)
	assert.Equal(t, "Denim Jacket", got)

	_, ok = c.Get("P2")
	assert.False(t, ok)
}

func TestLRUCache_Overwrite(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("P1", "Denim Jacket")
	c.Set("P1", "Denim Jacket v2")

	got, ok := c.Get("P1")
	assert.True(t, ok)
	assert.Equal(t, "Denim Jacket v2", got)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set("P1", "one")
	c.Set("P2", "two")

	// touch P1 so P2 becomes the eviction candidate
	_, ok := c.Get("P1")
	assert.True(t, ok)

	c.Set("P3", "three")

	_, ok = c.Get("P2")
	assert.False(t, ok)

	_, ok = c.Get("P1")
	assert.True(t, ok)
	_, ok = c.Get("P3")
	assert.True(t, ok)
}

func TestLRUCache_TTLExpiration(t *testing.T) {
	c := cache.NewLRUCache(10, 10*time.Millisecond)

	c.Set("P1", "one")
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("P1")
	assert.False(t, ok)
}

package utils

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCacheConcurrent(t *testing.T) {
	instances := make([]*GlobalCache, 8)
	var wg sync.WaitGroup
	for i := range instances {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			instances[i] = GetCache()
		}(i)
	}
	wg.Wait()

	for _, inst := range instances {
		assert.Same(t, instances[0], inst)
	}
}

func TestCacheSetGet(t *testing.T) {
	cache := GetCache()

	cache.Set("k", "v", time.Minute)
	assert.Equal(t, "v", cache.Get("k"))

	cache.Delete("k")
	assert.Nil(t, cache.Get("k"))
}

func TestCacheExpiry(t *testing.T) {
	cache := GetCache()

	cache.Set("gone", 42, -time.Second)
	assert.Nil(t, cache.Get("gone"))
}

func TestCacheIncrement(t *testing.T) {
	cache := GetCache()

	assert.Equal(t, 1, cache.Increment("ctr", time.Minute))
	assert.Equal(t, 2, cache.Increment("ctr", time.Minute))
	assert.Equal(t, 3, cache.Increment("ctr", time.Minute))

	// An expired window starts over at one.
	cache.Set("stale", 9, -time.Second)
	assert.Equal(t, 1, cache.Increment("stale", time.Minute))
}

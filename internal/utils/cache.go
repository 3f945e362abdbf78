package utils

import (
	"log"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CacheItem wraps a cached value with its expiry time.
type CacheItem struct {
	Data      interface{}
	ExpiresAt time.Time
}

// GlobalCache is a small in-process LRU with per-entry TTL. It backs the
// sidebar tag rankings and the rate limiter windows.
type GlobalCache struct {
	lruCache *lru.Cache[string, CacheItem]
}

var (
	cacheInstance *GlobalCache
	cacheOnce     sync.Once
)

// GetCache returns the singleton cache instance. Safe to call from any
// goroutine; the first caller builds it.
func GetCache() *GlobalCache {
	cacheOnce.Do(func() {
		l, err := lru.New[string, CacheItem](500)
		if err != nil {
			log.Fatalf("Failed to create LRU cache: %v", err)
		}
		cacheInstance = &GlobalCache{lruCache: l}
	})
	return cacheInstance
}

func (c *GlobalCache) Set(key string, data interface{}, ttl time.Duration) {
	c.lruCache.Add(key, CacheItem{
		Data:      data,
		ExpiresAt: time.Now().Add(ttl),
	})
}

// Get returns the cached value, or nil when absent or expired.
func (c *GlobalCache) Get(key string) interface{} {
	val, ok := c.lruCache.Get(key)
	if !ok {
		return nil
	}
	if time.Now().After(val.ExpiresAt) {
		c.lruCache.Remove(key)
		return nil
	}
	return val.Data
}

func (c *GlobalCache) Delete(key string) {
	c.lruCache.Remove(key)
}

// Increment bumps an integer counter under key, starting a fresh window
// with the given TTL when the counter is absent or expired. It returns
// the new count. Used for the fixed-window login limiter.
func (c *GlobalCache) Increment(key string, ttl time.Duration) int {
	val, ok := c.lruCache.Get(key)
	if !ok || time.Now().After(val.ExpiresAt) {
		c.lruCache.Add(key, CacheItem{Data: 1, ExpiresAt: time.Now().Add(ttl)})
		return 1
	}
	n, _ := val.Data.(int)
	n++
	c.lruCache.Add(key, CacheItem{Data: n, ExpiresAt: val.ExpiresAt})
	return n
}

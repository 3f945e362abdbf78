package middleware

import (
	"fmt"
	"net/http"
	"time"

	"rangi/internal/utils"

	"github.com/gin-gonic/gin"
)

// Window is one fixed-window rate limit tier.
type Window struct {
	Limit int
	Per   time.Duration
}

// LoginWindows throttles password guessing on /login.
var LoginWindows = []Window{
	{Limit: 3, Per: time.Minute},
	{Limit: 15, Per: time.Hour},
	{Limit: 45, Per: 24 * time.Hour},
}

// FeedWindows keeps scrapers from hammering the paged feed.
var FeedWindows = []Window{
	{Limit: 60, Per: time.Minute},
}

// RateLimit counts requests per client IP in fixed windows backed by
// the shared LRU cache, and answers 429 once any tier is exhausted.
// LRU eviction of a hot counter only ever under-counts, which is an
// acceptable trade for not carrying a second store.
func RateLimit(name string, windows []Window) gin.HandlerFunc {
	cache := utils.GetCache()
	return func(c *gin.Context) {
		ip := c.ClientIP()
		for _, w := range windows {
			key := fmt.Sprintf("ratelimit:%s:%s:%s", name, ip, w.Per)
			if cache.Increment(key, w.Per) > w.Limit {
				c.AbortWithStatus(http.StatusTooManyRequests)
				return
			}
		}
		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks request count and last activity for one rate-limited caller.
type client struct {
	lastSeen time.Time
	count    int
}

// In-memory per-IP request counters.
// NOTE: for multi-instance deployments move this to a shared store.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 120
	rateLimiterLock sync.Mutex
)

// RateLimiter limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to `limit` requests per `window` (default: 120 per minute).
//   - Identifies clients by IP address.
//   - Returns HTTP 429 Too Many Requests once the limit is exceeded.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.lastSeen) > window {
			cl = &client{lastSeen: now, count: 1}
			clients[ip] = cl
		} else {
			cl.count++
			cl.lastSeen = now
		}
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

type ipLimiter struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a per-client-IP token bucket to the group it is
// mounted on. Stale buckets are pruned inline once the map grows.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	var mu sync.Mutex
	clients := make(map[string]*ipLimiter)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		entry, ok := clients[ip]
		if !ok {
			if len(clients) > 10000 {
				cutoff := time.Now().Add(-3 * time.Minute)
				for k, v := range clients {
					if v.lastSeen.Before(cutoff) {
						delete(clients, k)
					}
				}
			}
			entry = &ipLimiter{lim: rate.NewLimiter(r, burst)}
			clients[ip] = entry
		}
		entry.lastSeen = time.Now()
		allowed := entry.lim.Allow()
		mu.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

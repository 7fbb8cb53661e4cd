package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Wang-Yi-Zhang/My-Daily-Note/internal/redis"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/logger"
	"github.com/Wang-Yi-Zhang/My-Daily-Note/pkg/responses"
)

// memoryWindow is the in-process fallback counter used when Redis is not
// available. Fixed windows keyed by client IP.
type memoryWindow struct {
	mu      sync.Mutex
	counts  map[string]int64
	resetAt time.Time
	window  time.Duration
}

func newMemoryWindow(window time.Duration) *memoryWindow {
	return &memoryWindow{
		counts:  make(map[string]int64),
		resetAt: time.Now().Add(window),
		window:  window,
	}
}

func (m *memoryWindow) hit(ip string) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	if time.Now().After(m.resetAt) {
		m.counts = make(map[string]int64)
		m.resetAt = time.Now().Add(m.window)
	}

	m.counts[ip]++
	return m.counts[ip]
}

// RateLimit enforces a fixed-window per-IP request ceiling. Counters live
// in Redis when available so that several instances share one window,
// otherwise in process memory. Past the ceiling the request is rejected
// with 429 and the given message; the client keeps its session.
func RateLimit(scope string, max int, window time.Duration, rdb *redis.Service, message string) gin.HandlerFunc {
	mem := newMemoryWindow(window)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		var count int64
		if rdb != nil {
			key := fmt.Sprintf("ratelimit:%s:%s", scope, ip)
			n, err := rdb.IncrWindow(c.Request.Context(), key, window)
			if err != nil {
				logger.Log.Warn().Err(err).Msg("Redis rate limit failed, using in-memory counter")
				count = mem.hit(ip)
			} else {
				count = n
			}
		} else {
			count = mem.hit(ip)
		}

		if count > int64(max) {
			responses.Error(c, http.StatusTooManyRequests, message)
			c.Abort()
			return
		}
		c.Next()
	}
}

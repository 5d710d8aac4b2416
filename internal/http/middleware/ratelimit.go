package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type windowEntry struct {
	start time.Time
	count int
}

type memoryWindow struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	max     int
	window  time.Duration
}

func (w *memoryWindow) allow(key string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	e, ok := w.entries[key]
	if !ok || now.Sub(e.start) > w.window {
		w.entries[key] = &windowEntry{start: now, count: 1}
		return true
	}
	e.count++
	return e.count <= w.max
}

// localWindow is the in-process fixed-window limiter used when Redis is
// not configured or unreachable. Single-instance only.
func localWindow(maxRequests int, window time.Duration) gin.HandlerFunc {
	w := &memoryWindow{
		entries: make(map[string]*windowEntry),
		max:     maxRequests,
		window:  window,
	}
	return func(c *gin.Context) {
		if !w.allow(c.ClientIP()) {
			RLBlocked.WithLabelValues(c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		RLRequests.WithLabelValues(c.FullPath()).Inc()
		c.Next()
	}
}

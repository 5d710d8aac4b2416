package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"twitch_casino/internal/logger"
)

// GameRateLimit limits game plays per player (not per IP) using Redis.
// Requires Identity to run first. Without Redis it degrades to an
// in-process window keyed by player id.
func GameRateLimit(maxGames int, window time.Duration) gin.HandlerFunc {
	local := &memoryWindow{
		entries: make(map[string]*windowEntry),
		max:     maxGames,
		window:  window,
	}
	return func(c *gin.Context) {
		playerID := PlayerID(c)
		if playerID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if redisClient == nil {
			limitGameLocally(c, local, playerID, window)
			return
		}

		key := "game_rl:" + playerID + ":" + strconv.FormatInt(int64(window.Seconds()), 10)
		ctx := context.Background()

		val, err := redisClient.Incr(ctx, key).Result()
		if err != nil {
			// a mid-flight redis outage degrades to the in-process window
			logger.Warn("game rate limiter redis error, using in-process window", "err", err)
			limitGameLocally(c, local, playerID, window)
			return
		}

		if val == 1 {
			redisClient.Expire(ctx, key, window)
		}

		c.Header("X-GameRateLimit-Limit", strconv.Itoa(maxGames))
		c.Header("X-GameRateLimit-Remaining", strconv.FormatInt(max(0, int64(maxGames)-val), 10))

		if val > int64(maxGames) {
			RLBlocked.WithLabelValues("game:" + c.FullPath()).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "game rate limit exceeded",
				"retry_after": int(window.Seconds()),
			})
			return
		}

		RLRequests.WithLabelValues("game:" + c.FullPath()).Inc()
		c.Next()
	}
}

func limitGameLocally(c *gin.Context, local *memoryWindow, playerID string, window time.Duration) {
	if !local.allow(playerID) {
		RLBlocked.WithLabelValues("game:" + c.FullPath()).Inc()
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"error":       "game rate limit exceeded",
			"retry_after": int(window.Seconds()),
		})
		return
	}
	RLRequests.WithLabelValues("game:" + c.FullPath()).Inc()
	c.Next()
}

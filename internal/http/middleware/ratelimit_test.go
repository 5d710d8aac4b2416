package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryWindowAllows(t *testing.T) {
	w := &memoryWindow{
		entries: make(map[string]*windowEntry),
		max:     3,
		window:  time.Minute,
	}

	for i := 0; i < 3; i++ {
		require.True(t, w.allow("a"), "request %d", i)
	}
	require.False(t, w.allow("a"))

	// distinct keys have independent windows
	require.True(t, w.allow("b"))
}

func TestMemoryWindowResets(t *testing.T) {
	w := &memoryWindow{
		entries: make(map[string]*windowEntry),
		max:     1,
		window:  10 * time.Millisecond,
	}

	require.True(t, w.allow("a"))
	require.False(t, w.allow("a"))
	time.Sleep(15 * time.Millisecond)
	require.True(t, w.allow("a"))
}

func TestGameRateLimitPerPlayer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/play", Identity(), GameRateLimit(2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	play := func(player string) int {
		req := httptest.NewRequest(http.MethodPost, "/play", nil)
		req.Header.Set("X-Player-ID", player)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, play("p1"))
	require.Equal(t, http.StatusOK, play("p1"))
	require.Equal(t, http.StatusTooManyRequests, play("p1"))
	// the limit is per player, not global
	require.Equal(t, http.StatusOK, play("p2"))
}

func TestRateLimitHoldsThroughRedisErrors(t *testing.T) {
	// a client that cannot reach redis makes every INCR fail; the limiter
	// must keep enforcing the in-process window instead of failing open
	redisClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() {
		redisClient.Close()
		redisClient = nil
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", RedisRateLimit(1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	get := func() int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w.Code
	}

	require.Equal(t, http.StatusOK, get())
	require.Equal(t, http.StatusTooManyRequests, get())
}

func TestGameRateLimitThroughRedisErrors(t *testing.T) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() {
		redisClient.Close()
		redisClient = nil
	})

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/play", Identity(), GameRateLimit(1, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	play := func() int {
		req := httptest.NewRequest(http.MethodPost, "/play", nil)
		req.Header.Set("X-Player-ID", "p1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, play())
	require.Equal(t, http.StatusTooManyRequests, play())
}

func TestGameRateLimitRequiresIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/play", GameRateLimit(2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/play", nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

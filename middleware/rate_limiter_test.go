package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyashaushe/loyaltAI/config"
)

func setupRateLimiterRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	prev := config.RedisClient
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { config.RedisClient = prev })
}

func rateLimitedRouter(maxRequests int, claims func(c *gin.Context)) *gin.Engine {
	router := gin.New()
	group := router.Group("/admin")
	if claims != nil {
		group.Use(claims)
	}
	group.Use(RateLimiter(maxRequests, time.Minute))
	group.GET("/rewards", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func tenantClaims(tenantID, userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("tenantID", tenantID)
		c.Set("userID", userID)
		c.Next()
	}
}

func TestRateLimiterBlocksOverLimit(t *testing.T) {
	setupRateLimiterRedis(t)
	router := rateLimitedRouter(2, tenantClaims("tenant-a", "user-1"))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Too many requests")
}

func TestRateLimiterKeysPerTenant(t *testing.T) {
	setupRateLimiterRedis(t)

	// Exhaust tenant A's window
	routerA := rateLimitedRouter(1, tenantClaims("tenant-a", "user-1"))
	w := httptest.NewRecorder()
	routerA.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))
	require.Equal(t, http.StatusOK, w.Code)
	w = httptest.NewRecorder()
	routerA.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	// Tenant B on the same endpoint still has a fresh window
	routerB := rateLimitedRouter(1, tenantClaims("tenant-b", "user-1"))
	w = httptest.NewRecorder()
	routerB.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/rewards", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateSubject(t *testing.T) {
	t.Run("authenticated requests key on tenant and user", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/admin/rewards", nil)
		c.Set("tenantID", "tenant-a")
		c.Set("userID", "user-1")

		assert.Equal(t, "tenant-a:user-1", rateSubject(c))
	})

	t.Run("anonymous requests fall back to the client IP", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/auth/login", nil)
		c.Request.RemoteAddr = "203.0.113.9:51234"

		assert.Equal(t, "ip:203.0.113.9", rateSubject(c))
	})
}

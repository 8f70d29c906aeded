package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/models"
)

const rateKeyPrefix = "loyaltai:rl:"

// rateSubject identifies who a rate window belongs to. Authenticated calls
// are limited per tenant and user, so one tenant's dashboard cannot starve
// another sitting behind the same NAT. Anonymous calls (the public auth
// endpoints) fall back to the client IP.
func rateSubject(c *gin.Context) string {
	tenantID, hasTenant := GetTenantIDFromContext(c)
	userID, hasUser := GetUserIDFromContext(c)
	if hasTenant && hasUser {
		return tenantID + ":" + userID
	}
	return "ip:" + c.ClientIP()
}

// RateLimiter is a fixed-window limiter over Redis, keyed per subject, per
// method, per endpoint. Run it after AuthMiddleware on protected groups so
// the tenant claims are available for the key.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rateKeyPrefix + rateSubject(c) + ":" + c.Request.Method + ":" + c.FullPath()
		resetKey := key + ":resetAt"

		count, err := config.RedisClient.Incr(config.Ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Redis error"))
			c.Abort()
			return
		}

		// First request of the window → set expiry and a stable resetAt
		if count == 1 {
			config.RedisClient.Expire(config.Ctx, key, window)
			resetAt := time.Now().Add(window)
			config.RedisClient.Set(config.Ctx, resetKey, resetAt.Unix(), window)
		}

		resetAtUnix, _ := config.RedisClient.Get(config.Ctx, resetKey).Int64()
		resetAt := time.Unix(resetAtUnix, 0)

		remaining := maxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Controllers surface this in the response envelope
		c.Set("rateLimiter", rate)

		if int(count) > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

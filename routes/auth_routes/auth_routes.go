package auth_routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nyashaushe/loyaltAI/controllers/auth_controller"
	"github.com/nyashaushe/loyaltAI/middleware"
)

// SetupAuthRoutes registers the public auth endpoints and /me
func SetupAuthRoutes(rg *gin.RouterGroup) {
	// Tight IP-keyed window; these endpoints face credential stuffing
	auth := rg.Group("/auth")
	auth.Use(middleware.RateLimiter(20, time.Minute))

	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	auth.POST("/signup", auth_controller.Signup)
	auth.POST("/login", auth_controller.Login)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	me := rg.Group("/me")
	me.Use(middleware.AuthMiddleware())
	{
		me.GET("", auth_controller.GetMe)
	}
}

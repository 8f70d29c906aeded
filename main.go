// @title LoyaltAI API
// @version 1.0
// @description Multi-tenant loyalty program backend
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/nyashaushe/loyaltAI/config"
	"github.com/nyashaushe/loyaltAI/middleware"
	"github.com/nyashaushe/loyaltAI/routes/auth_routes"
	"github.com/nyashaushe/loyaltAI/routes/cms_routes"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	defer config.CloseDB()
	// Redis connection
	config.ConnectRedis()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public auth + /me (at /api/v1 prefix)
	auth_routes.SetupAuthRoutes(api)
	log.Println("✅ Auth routes registered")

	// Admin dashboard routes (at /api/v1/admin prefix)
	// Auth runs first so the rate limiter can key on the tenant claims and
	// the audit trail can attribute mutations
	adminGroup := api.Group("/admin")
	adminGroup.Use(
		middleware.AuthMiddleware(),
		middleware.AdminMiddleware(),
		middleware.RateLimiter(100, time.Minute),
		middleware.AuditMiddleware(),
	)
	cms_routes.SetupAnalyticsRoutes(adminGroup)
	cms_routes.SetupRewardRoutes(adminGroup)
	cms_routes.SetupProgramRoutes(adminGroup)
	cms_routes.SetupCustomerRoutes(adminGroup)
	cms_routes.SetupTransactionRoutes(adminGroup)
	log.Println("✅ Admin routes registered")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	fmt.Printf("🚀 Server is running on http://localhost:%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	// RedisClient backs the per-tenant rate limiter; nothing else writes
	// to this instance.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️ REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("❌ invalid REDIS_URL: %v", err)
	}
	// Shows up in CLIENT LIST, which is all we have on managed Redis
	opt.ClientName = "loyaltai-api"

	RedisClient = redis.NewClient(opt)

	if err := RedisClient.Ping(Ctx).Err(); err != nil {
		log.Fatalf("❌ failed to connect to Redis: %v", err)
	}
	log.Println("✅ Redis connected")
}

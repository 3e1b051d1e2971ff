package config

import (
	"context"

	"github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"

	"strays-backend/internal/utils"
)

// ConnectRedis returns nil when the cache is unreachable; callers
// treat a nil client as cache-disabled.
func ConnectRedis() *redis.Client {
	addr := utils.GetConfig("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: utils.GetConfig("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Warnf("redis unavailable, leaderboard cache disabled: %v", err)
		return nil
	}
	return rdb
}

package database

import (
	"context"
	"fmt"
	"hospital-portal-service/internal/app/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient connects to Redis for the submission rate limiter. Redis is
// optional: when unreachable the limiter degrades to pass-through.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", driverConfig.Redis.Host, driverConfig.Redis.Port),
		Password: driverConfig.Redis.Password,
	})

	_, err := rdb.Ping(context.Background()).Result()
	if err != nil {
		log.Warn("Could not connect to Redis, submission rate limiting disabled", zap.Error(err))
		return nil
	}

	log.Info("Successfully connected to Redis")
	return rdb
}

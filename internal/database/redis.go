package database

import (
	"context"
	"fmt"
	"time"

	"celerey/internal/config"
	"celerey/internal/logger"

	"github.com/go-redis/redis/v8"
)

// InitRedis initializes the Redis client and checks the connection.
func InitRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisHost + ":" + cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	logger.Get().Infow("Redis connection established", "addr", cfg.RedisHost+":"+cfg.RedisPort)
	return rdb, nil
}

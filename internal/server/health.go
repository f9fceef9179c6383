package server

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthProbe reports whether a backing service is reachable.
type HealthProbe interface {
	Probe(ctx context.Context) error
}

// DatabaseHealth pings the SQL database.
type DatabaseHealth struct {
	DB *gorm.DB
}

// Probe implements HealthProbe.
func (h DatabaseHealth) Probe(ctx context.Context) error {
	if h.DB == nil {
		return nil
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	return nil
}

// RedisHealth pings the Redis server.
type RedisHealth struct {
	Client *redis.Client
}

// Probe implements HealthProbe.
func (h RedisHealth) Probe(ctx context.Context) error {
	if h.Client == nil {
		return nil
	}
	if err := h.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	return nil
}

// Package storage provides the durable slots onboarding stores persist into.
// Each slot holds one serialized record under a fixed key, scoped to a session.
package storage

import (
	"fmt"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"celerey/internal/config"
	"celerey/internal/onboarding"
)

var (
	_ onboarding.Slot = (*GormSlot)(nil)
	_ onboarding.Slot = (*RedisSlot)(nil)
	_ onboarding.Slot = (*MemorySlot)(nil)
)

// Backends holds the clients a slot factory may need.
type Backends struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Memory *MemoryStore
}

// NewFactory returns a factory producing slots of the configured backend.
func NewFactory(cfg *config.Config, b Backends) (onboarding.SlotFactory, error) {
	switch cfg.StorageBackend {
	case config.StorageSQL:
		if b.DB == nil {
			return nil, fmt.Errorf("storage backend %q requires a database", cfg.StorageBackend)
		}
		return func(scope string) onboarding.Slot {
			return NewGormSlot(b.DB, scope, onboarding.StorageKey)
		}, nil
	case config.StorageRedis:
		if b.Redis == nil {
			return nil, fmt.Errorf("storage backend %q requires a redis client", cfg.StorageBackend)
		}
		prefix, ttl := cfg.RedisKeyPrefix, cfg.SlotTTL
		return func(scope string) onboarding.Slot {
			return NewRedisSlot(b.Redis, RedisKey(prefix, scope, onboarding.StorageKey), ttl)
		}, nil
	case config.StorageMemory:
		mem := b.Memory
		if mem == nil {
			mem = NewMemoryStore()
		}
		return func(scope string) onboarding.Slot {
			return mem.Slot(scope, onboarding.StorageKey)
		}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

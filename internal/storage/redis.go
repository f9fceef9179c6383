package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisKey builds the key of a slot: <prefix>:<scope>:<key>.
func RedisKey(prefix, scope, key string) string {
	return prefix + ":" + scope + ":" + key
}

// RedisSlot keeps a slot as a Redis string. A positive TTL makes abandoned
// sessions expire; every save refreshes it.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisSlot returns the slot stored under key.
func NewRedisSlot(client *redis.Client, key string, ttl time.Duration) *RedisSlot {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisSlot{client: client, key: key, ttl: ttl}
}

// Load returns the stored value, or nil when the key does not exist.
func (s *RedisSlot) Load(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("load slot %s: %w", s.key, err)
	}
	return data, nil
}

// Save writes the value.
func (s *RedisSlot) Save(ctx context.Context, data []byte) error {
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save slot %s: %w", s.key, err)
	}
	return nil
}

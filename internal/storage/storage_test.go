package storage

import (
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celerey/internal/config"
	"celerey/internal/logger"
	"celerey/internal/testutil"
)

func init() {
	logger.Init("test")
}

func TestNewFactory(t *testing.T) {
	t.Run("sql", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		factory, err := NewFactory(&config.Config{StorageBackend: config.StorageSQL}, Backends{DB: db})
		require.NoError(t, err)
		assert.IsType(t, &GormSlot{}, factory("s1"))
	})

	t.Run("sql without database", func(t *testing.T) {
		_, err := NewFactory(&config.Config{StorageBackend: config.StorageSQL}, Backends{})
		assert.Error(t, err)
	})

	t.Run("redis", func(t *testing.T) {
		client, _ := redismock.NewClientMock()
		cfg := &config.Config{StorageBackend: config.StorageRedis, RedisKeyPrefix: "celerey"}

		factory, err := NewFactory(cfg, Backends{Redis: client})
		require.NoError(t, err)

		slot, ok := factory("s1").(*RedisSlot)
		require.True(t, ok)
		assert.Equal(t, "celerey:s1:onboarding-storage", slot.key)
	})

	t.Run("memory shares one store", func(t *testing.T) {
		mem := NewMemoryStore()
		factory, err := NewFactory(&config.Config{StorageBackend: config.StorageMemory}, Backends{Memory: mem})
		require.NoError(t, err)

		slot, ok := factory("s1").(*MemorySlot)
		require.True(t, ok)
		assert.Same(t, mem, slot.store)
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := NewFactory(&config.Config{StorageBackend: "etcd"}, Backends{})
		assert.Error(t, err)
	})
}

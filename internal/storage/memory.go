package storage

import (
	"context"
	"sync"
)

// MemoryStore holds slots in process memory. Values outlive the stores that
// wrote them but not the process.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string][]byte)}
}

// Slot returns the slot identified by scope and key.
func (m *MemoryStore) Slot(scope, key string) *MemorySlot {
	return &MemorySlot{store: m, id: scope + "/" + key}
}

// Len returns the number of stored values.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

// MemorySlot is one entry of a MemoryStore.
type MemorySlot struct {
	store *MemoryStore
	id    string
}

// Load returns a copy of the stored value, or nil when nothing was saved.
func (s *MemorySlot) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()
	data, ok := s.store.items[s.id]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

// Save stores a copy of data.
func (s *MemorySlot) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.store.mu.Lock()
	defer s.store.mu.Unlock()
	s.store.items[s.id] = append([]byte(nil), data...)
	return nil
}

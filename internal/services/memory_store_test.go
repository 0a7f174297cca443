package services

import (
	"context"
	"sync"

	"github.com/contentply/contentply/internal/domain"
)

// memoryStore is an in-memory ports.StateStore for tests
type memoryStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{values: make(map[string][]byte)}
}

func (m *memoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, domain.ErrStateNotFound
	}
	return value, nil
}

func (m *memoryStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) raw(key string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return string(m.values[key])
}

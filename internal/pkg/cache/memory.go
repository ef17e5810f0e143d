package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

type memoryCache struct {
	mu          sync.RWMutex
	entries     map[string]memoryEntry
	serviceName string
}

// NewMemoryCache returns an in-process Cache. The default for single-node
// deployments and for tests; no eviction beyond TTL expiry on read.
func NewMemoryCache(serviceName string) Cache {
	return &memoryCache{
		entries:     make(map[string]memoryEntry),
		serviceName: serviceName,
	}
}

func (m *memoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = memoryEntry{value: value, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (m *memoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return "", nil
	}
	if time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

func (m *memoryCache) GenerateKey(operation, key string) string {
	return keyFor(m.serviceName, operation, key)
}

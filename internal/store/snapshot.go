package store

import (
	"context"
	"sync"
)

// Snapshots is the persisted key-value mirror behind the cart and wishlist
// stores. Each key holds one fully serialized collection; every mutation
// overwrites the whole value (last-write-wins, no partial updates).
//
// The mirror is derived state, never authoritative: Load seeds a store on
// construction, and a missing or unreadable key simply means "start empty".
type Snapshots interface {
	// Load returns the snapshot stored under key, or (nil, nil) if absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save overwrites the snapshot under key.
	Save(ctx context.Context, key string, data []byte) error

	// Delete removes the snapshot under key.
	Delete(ctx context.Context, key string) error
}

// MemorySnapshots is an in-process Snapshots implementation. Used in tests
// and as a fallback when no Redis address is configured.
type MemorySnapshots struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{data: make(map[string][]byte)}
}

func (m *MemorySnapshots) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}

func (m *MemorySnapshots) Save(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := make([]byte, len(data))
	copy(cp, data)
	m.data[key] = cp
	return nil
}

func (m *MemorySnapshots) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}

package snapshot

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory snapshot store. It is the default store
// and suitable for single-server deployments and tests.
type MemoryStore struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
	closed    bool
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string][]byte),
	}
}

// Save stores a copy of data under key.
func (m *MemoryStore) Save(ctx context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	// Copy so later caller mutations don't leak into the store.
	stored := make([]byte, len(data))
	copy(stored, data)
	m.snapshots[key] = stored
	return nil
}

// Load retrieves the snapshot for key, or (nil, nil) if absent.
func (m *MemoryStore) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrClosed
	}

	data, ok := m.snapshots[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Delete removes the snapshot for key.
func (m *MemoryStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}
	delete(m.snapshots, key)
	return nil
}

// Close marks the store closed; subsequent operations fail.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.snapshots = nil
	return nil
}

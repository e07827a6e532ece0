package persist

import (
	"context"
	"sync"

	"github.com/aureusfin/aureus/internal/state"
)

// MemoryStore keeps the blob in memory. Used in tests and as a harmless
// fallback when persistence is disabled.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	saves int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved blob, or state.ErrNotFound before any save.
func (m *MemoryStore) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, state.ErrNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

// Save keeps a copy of the blob.
func (m *MemoryStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make([]byte, len(data))
	copy(m.data, data)
	m.saves++
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}

// SaveCount reports how many times Save was called.
func (m *MemoryStore) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

package analytics

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store. The inspector keeps analytics for the
// lifetime of a session only.
type MemoryStore struct {
	mu     sync.Mutex
	items  []Event
	nextID int64
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Save(_ context.Context, e Event) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	e.ID = m.nextID
	m.items = append(m.items, e)
	return e.ID, nil
}

// List returns events newest first.
func (m *MemoryStore) List(_ context.Context) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Event, len(m.items))
	for i, e := range m.items {
		out[len(m.items)-1-i] = e
	}
	return out, nil
}

func (m *MemoryStore) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = nil
	return nil
}

func (m *MemoryStore) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.items)), nil
}

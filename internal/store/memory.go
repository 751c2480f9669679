package store

import (
	"sync"

	"github.com/finviz-dev/finviz/internal/model"
)

// MemoryStore keeps the collection in memory. Useful for tests and for
// ephemeral runs (FINVIZ_STORE=memory).
type MemoryStore struct {
	mu   sync.RWMutex
	txns []model.StoredTransaction
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ReadAll returns a copy of the collection.
func (s *MemoryStore) ReadAll() ([]model.StoredTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.txns == nil {
		return nil, nil
	}
	out := make([]model.StoredTransaction, len(s.txns))
	copy(out, s.txns)
	return out, nil
}

// WriteAll replaces the collection.
func (s *MemoryStore) WriteAll(txns []model.StoredTransaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = make([]model.StoredTransaction, len(txns))
	copy(s.txns, txns)
	return nil
}

// Clear empties the collection.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = nil
	return nil
}

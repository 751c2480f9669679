// Package store provides the persistence gateway for the transaction
// collection. The pipeline depends only on the Store interface; concrete
// backends are selected at startup from configuration.
package store

import (
	"fmt"
	"path/filepath"

	"github.com/finviz-dev/finviz/internal/config"
	"github.com/finviz-dev/finviz/internal/model"
)

// Store is the minimal contract the pipeline needs from a backend:
// read, replace and clear one ordered transaction collection.
type Store interface {
	// ReadAll returns the persisted collection. A missing store reads as empty.
	ReadAll() ([]model.StoredTransaction, error)
	// WriteAll replaces the persisted collection in one write.
	WriteAll(txns []model.StoredTransaction) error
	// Clear empties the persisted collection.
	Clear() error
}

// Open selects and opens a backend for the given data root.
func Open(root string, cfg *config.Config) (Store, error) {
	switch backend := cfg.Backend(); backend {
	case "file":
		return NewFileStore(filepath.Join(root, cfg.Storage.File)), nil
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/finviz-dev/finviz/internal/model"
)

// FileStore persists the collection as a pretty-printed JSON array, the same
// shape the statement dashboard reads.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// ReadAll reads the persisted collection. A missing file reads as empty.
func (s *FileStore) ReadAll() ([]model.StoredTransaction, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var txns []model.StoredTransaction
	if err := json.Unmarshal(data, &txns); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", s.path, err)
	}
	return txns, nil
}

// WriteAll replaces the persisted collection in a single write.
func (s *FileStore) WriteAll(txns []model.StoredTransaction) error {
	if txns == nil {
		txns = []model.StoredTransaction{}
	}
	data, err := json.MarshalIndent(txns, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store: %w", err)
	}
	return nil
}

// Clear empties the persisted collection.
func (s *FileStore) Clear() error {
	return s.WriteAll(nil)
}

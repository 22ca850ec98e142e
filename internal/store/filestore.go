package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/brd-generator/internal/types"
)

// FileStore keeps one brd_<id>.json file per record under a root directory.
type FileStore struct {
	root string
}

// NewFileStore creates the root directory if needed and returns the store.
func NewFileStore(root string) (*FileStore, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", root, err)
	}
	return &FileStore{root: root}, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.root, fmt.Sprintf("brd_%s.json", id))
}

// Save writes the record as a single JSON file keyed by its id.
func (s *FileStore) Save(_ context.Context, record *types.PersistedBRD) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal BRD %s: %w", record.ID, err)
	}
	if err := os.WriteFile(s.recordPath(record.ID), data, 0644); err != nil {
		return fmt.Errorf("failed to write BRD %s: %w", record.ID, err)
	}
	return nil
}

// Get reads back a record by id.
func (s *FileStore) Get(_ context.Context, id string) (*types.PersistedBRD, error) {
	data, err := os.ReadFile(s.recordPath(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to read BRD %s: %w", id, err)
	}

	var record types.PersistedBRD
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal BRD %s: %w", id, err)
	}
	return &record, nil
}

// Package store persists completed BRDs keyed by opaque id.
// Records are write-once: there is no update or delete path.
package store

import (
	"context"
	"fmt"

	"github.com/jonathan/brd-generator/internal/types"
)

// Store is the durable storage for persisted BRDs. Concurrent writes to
// distinct ids need no coordination; ids are unique by construction.
type Store interface {
	// Save writes one record keyed by its id.
	Save(ctx context.Context, record *types.PersistedBRD) error
	// Get returns the record for id, or NotFoundError if none exists.
	Get(ctx context.Context, id string) (*types.PersistedBRD, error)
}

// NotFoundError indicates no record exists for the requested id
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("BRD not found: %s", e.ID)
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/brd-generator/internal/types"
)

// PostgresStore persists BRDs in a brds table, one row per id.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore establishes a connection pool and ensures the brds table
// exists.
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS brds (
			id UUID PRIMARY KEY,
			original_source TEXT NOT NULL,
			created_at TEXT NOT NULL,
			brd JSONB NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure brds table: %w", err)
	}
	return nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Save inserts one record keyed by its id.
func (s *PostgresStore) Save(ctx context.Context, record *types.PersistedBRD) error {
	brdJSON, err := json.Marshal(record.BRD)
	if err != nil {
		return fmt.Errorf("failed to marshal BRD %s: %w", record.ID, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO brds (id, original_source, created_at, brd)
		 VALUES ($1, $2, $3, $4)`,
		record.ID, record.OriginalSource, record.CreatedAt, brdJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save BRD %s: %w", record.ID, err)
	}
	return nil
}

// Get returns the record for id.
func (s *PostgresStore) Get(ctx context.Context, id string) (*types.PersistedBRD, error) {
	record := &types.PersistedBRD{ID: id}
	var brdJSON []byte

	err := s.pool.QueryRow(ctx,
		`SELECT original_source, created_at, brd FROM brds WHERE id = $1`, id,
	).Scan(&record.OriginalSource, &record.CreatedAt, &brdJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load BRD %s: %w", id, err)
	}

	if err := json.Unmarshal(brdJSON, &record.BRD); err != nil {
		return nil, fmt.Errorf("failed to unmarshal BRD %s: %w", id, err)
	}
	return record, nil
}

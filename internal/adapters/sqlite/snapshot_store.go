// Package sqlite contains the SQLite implementation of the durable
// key-value snapshot store.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/auditking/internal/ports/secondary"
)

// SnapshotStore implements secondary.SnapshotStore with SQLite.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a new SQLite snapshot store.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Get returns the value stored under key. Absence is reported via the bool,
// not as an error.
func (s *SnapshotStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var body []byte
	err := s.db.QueryRowContext(ctx, "SELECT body FROM snapshots WHERE key = ?", key).Scan(&body)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read snapshot: %w", err)
	}
	return body, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *SnapshotStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO snapshots (key, body, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET body = excluded.body, updated_at = CURRENT_TIMESTAMP",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Ensure SnapshotStore implements the interface
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)

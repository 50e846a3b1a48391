// Package store implements the record store lifecycle: one in-memory
// snapshot loaded at start, replaced atomically by each mutation, and
// persisted after every change. There is exactly one logical writer at a
// time, so no locking discipline is needed; a future multi-writer deployment
// would need per-record version stamps instead.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/auditking/internal/ports/secondary"
	"github.com/example/auditking/internal/snapshot"
)

// SnapshotKey is the fixed key the snapshot lives under in durable storage.
const SnapshotKey = "auditking/snapshot/v3"

// Store owns the process's single snapshot.
type Store struct {
	kv   secondary.SnapshotStore
	snap *snapshot.Snapshot
}

// Open loads the last persisted snapshot from kv. Absent or malformed
// content falls back to the deterministic seed; load never fails.
func Open(ctx context.Context, kv secondary.SnapshotStore) *Store {
	s := &Store{kv: kv}
	s.snap = load(ctx, kv)
	return s
}

func load(ctx context.Context, kv secondary.SnapshotStore) *snapshot.Snapshot {
	data, ok, err := kv.Get(ctx, SnapshotKey)
	if err != nil || !ok {
		return snapshot.Seed()
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		// Malformed content is treated as absence, never raised.
		return snapshot.Seed()
	}
	if len(snap.Users) == 0 {
		return snapshot.Seed()
	}
	return &snap
}

// Snapshot returns the current snapshot. Callers must not retain it across a
// mutation.
func (s *Store) Snapshot() *snapshot.Snapshot {
	return s.snap
}

// Mutate applies fn to the snapshot and persists the result. If fn returns
// an error the snapshot is left untouched and nothing is written. A persist
// failure is swallowed: the in-memory snapshot stays authoritative for the
// rest of the session and only durability is affected.
func (s *Store) Mutate(ctx context.Context, fn func(*snapshot.Snapshot) error) error {
	next := clone(s.snap)
	if err := fn(next); err != nil {
		return err
	}
	s.snap = next
	s.persist(ctx)
	return nil
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.snap)
	if err != nil {
		return
	}
	_ = s.kv.Set(ctx, SnapshotKey, data)
}

// clone deep-copies a snapshot through its JSON form so a failed mutation
// can never leave a half-applied state behind.
func clone(snap *snapshot.Snapshot) *snapshot.Snapshot {
	data, err := json.Marshal(snap)
	if err != nil {
		// The snapshot is always JSON-serializable; this is unreachable
		// short of memory corruption.
		panic(fmt.Sprintf("snapshot clone: %v", err))
	}
	var out snapshot.Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("snapshot clone: %v", err))
	}
	return &out
}

// CurrentUser returns the active identity used for ownership stamping and
// my-vs-all filtering.
func (s *Store) CurrentUser() *snapshot.User {
	return s.snap.CurrentUser()
}

// SetCurrentUser moves the active-identity pointer.
func (s *Store) SetCurrentUser(ctx context.Context, id string) error {
	return s.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		if snap.UserByID(id) == nil {
			return fmt.Errorf("user %s not found", id)
		}
		snap.CurrentUserID = id
		return nil
	})
}

package app

import (
	"context"
	"testing"
	"time"

	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockKV implements secondary.SnapshotStore in memory.
type mockKV struct {
	data   map[string][]byte
	setErr error
}

func newMockKV() *mockKV {
	return &mockKV{data: make(map[string][]byte)}
}

func (m *mockKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockKV) Set(ctx context.Context, key string, value []byte) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[key] = value
	return nil
}

// ============================================================================
// Test Helpers
// ============================================================================

// newTestStore opens a store over an empty in-memory KV, which loads the
// deterministic seed (admin u1 plus two templates).
func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(context.Background(), newMockKV())
}

// addUser appends a user to the snapshot and returns its id.
func addUser(t *testing.T, st *store.Store, id string, roles ...snapshot.Role) string {
	t.Helper()
	err := st.Mutate(context.Background(), func(snap *snapshot.Snapshot) error {
		snap.Users = append(snap.Users, snapshot.User{
			ID:    id,
			Email: id + "@auditking.app",
			Name:  "Test " + id,
			Roles: roles,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	return id
}

// switchUser moves the active identity.
func switchUser(t *testing.T, st *store.Store, id string) {
	t.Helper()
	if err := st.SetCurrentUser(context.Background(), id); err != nil {
		t.Fatalf("failed to switch user: %v", err)
	}
}

func fixedNow(sec int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, sec, 0, time.UTC)
	}
}

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }

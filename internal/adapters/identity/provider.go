// Package identity contains the snapshot-backed identity provider adapter.
// In a hosted deployment this port would front the provider's admin API; a
// local ledger keeps its identities inside the snapshot.
package identity

import (
	"context"

	"github.com/example/auditking/internal/ports/secondary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// SnapshotProvider implements secondary.IdentityAdmin over the record store.
type SnapshotProvider struct {
	store *store.Store
}

// NewSnapshotProvider creates a new snapshot-backed identity admin.
func NewSnapshotProvider(st *store.Store) *SnapshotProvider {
	return &SnapshotProvider{store: st}
}

// ListUsers returns every known identity.
func (p *SnapshotProvider) ListUsers(ctx context.Context) ([]snapshot.User, error) {
	src := p.store.Snapshot().Users
	out := make([]snapshot.User, len(src))
	copy(out, src)
	return out, nil
}

// DeleteUser removes an identity. Absent ids are a silent no-op.
func (p *SnapshotProvider) DeleteUser(ctx context.Context, id string) error {
	return p.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		for i := range snap.Users {
			if snap.Users[i].ID == id {
				snap.Users = append(snap.Users[:i], snap.Users[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// Ensure SnapshotProvider implements the interface
var _ secondary.IdentityAdmin = (*SnapshotProvider)(nil)

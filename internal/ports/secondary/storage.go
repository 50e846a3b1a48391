// Package secondary defines the driven ports: contracts the application core
// expects its external collaborators to satisfy.
package secondary

import (
	"context"

	"github.com/example/auditking/internal/snapshot"
)

// SnapshotStore is the durable local storage contract: a key-value byte
// store. The record store serializes its whole snapshot as JSON text under
// one fixed key; the storage layer never interprets the bytes.
type SnapshotStore interface {
	// Get returns the stored value for key. The second return value is false
	// when the key is absent; absence is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
}

// IdentityAdmin is the narrow admin contract against the identity provider:
// list and remove identities. The core never authenticates, it only consumes
// {id, email, name, roles}.
type IdentityAdmin interface {
	// ListUsers returns every known identity.
	ListUsers(ctx context.Context) ([]snapshot.User, error)

	// DeleteUser removes an identity. Absent ids are a silent no-op.
	DeleteUser(ctx context.Context, id string) error
}

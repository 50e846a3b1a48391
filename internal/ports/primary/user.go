package primary

import (
	"context"

	"github.com/example/auditking/internal/snapshot"
)

// UserService defines the primary port for identity operations. The ledger
// consumes identities; it never authenticates them.
type UserService interface {
	// Whoami returns the acting user.
	Whoami(ctx context.Context) (*snapshot.User, error)

	// SetCurrentUser moves the active-identity pointer.
	SetCurrentUser(ctx context.Context, id string) error

	// ListUsers returns every known identity. Admin only.
	ListUsers(ctx context.Context) ([]snapshot.User, error)

	// DeleteUser removes an identity. Admin only; the acting user cannot be
	// deleted; an absent id is a silent no-op.
	DeleteUser(ctx context.Context, id string) error
}

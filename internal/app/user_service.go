package app

import (
	"context"
	"fmt"

	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/ports/secondary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// UserServiceImpl implements the UserService interface. List/delete go
// through the identity-provider admin port; the ledger itself only ever
// reads identities.
type UserServiceImpl struct {
	store    *store.Store
	identity secondary.IdentityAdmin
}

// NewUserService creates a new UserService with injected dependencies.
func NewUserService(st *store.Store, identity secondary.IdentityAdmin) *UserServiceImpl {
	return &UserServiceImpl{store: st, identity: identity}
}

// Whoami returns the acting user.
func (s *UserServiceImpl) Whoami(ctx context.Context) (*snapshot.User, error) {
	actor := s.store.CurrentUser()
	if actor == nil {
		return nil, fmt.Errorf("no active user %w", ErrNotFound)
	}
	out := *actor
	return &out, nil
}

// SetCurrentUser moves the active-identity pointer.
func (s *UserServiceImpl) SetCurrentUser(ctx context.Context, id string) error {
	if err := s.store.SetCurrentUser(ctx, id); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	return nil
}

// ListUsers returns every known identity. Admin only.
func (s *UserServiceImpl) ListUsers(ctx context.Context) ([]snapshot.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	return s.identity.ListUsers(ctx)
}

// DeleteUser removes an identity. Admin only; the acting user cannot delete
// themselves; an absent id is a silent no-op.
func (s *UserServiceImpl) DeleteUser(ctx context.Context, id string) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if actor := s.store.CurrentUser(); actor != nil && actor.ID == id {
		return fmt.Errorf("%w: cannot delete the active user", ErrValidation)
	}
	return s.identity.DeleteUser(ctx, id)
}

func (s *UserServiceImpl) requireAdmin() error {
	actor := s.store.CurrentUser()
	if actor == nil || !actor.HasRole(snapshot.RoleAdmin) {
		return fmt.Errorf("%w: only admins can manage users", ErrUnauthorized)
	}
	return nil
}

// Ensure UserServiceImpl implements the interface
var _ primary.UserService = (*UserServiceImpl)(nil)

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/auditking/internal/adapters/identity"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

func newUserService(t *testing.T) (*UserServiceImpl, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return NewUserService(st, identity.NewSnapshotProvider(st)), st
}

// ============================================================================
// Whoami / SetCurrentUser Tests
// ============================================================================

func TestWhoami_ReturnsActingUser(t *testing.T) {
	svc, _ := newUserService(t)

	got, err := svc.Whoami(context.Background())
	if err != nil {
		t.Fatalf("Whoami failed: %v", err)
	}
	if got.ID != "u1" || !got.HasRole(snapshot.RoleAdmin) {
		t.Errorf("whoami = %+v, want seeded admin", got)
	}
}

func TestSetCurrentUser_SwitchesIdentity(t *testing.T) {
	svc, st := newUserService(t)
	addUser(t, st, "u2", snapshot.RoleInspector)

	if err := svc.SetCurrentUser(context.Background(), "u2"); err != nil {
		t.Fatalf("SetCurrentUser failed: %v", err)
	}
	if st.CurrentUser().ID != "u2" {
		t.Errorf("current user = %q, want u2", st.CurrentUser().ID)
	}
}

func TestSetCurrentUser_UnknownIDRejected(t *testing.T) {
	svc, st := newUserService(t)

	err := svc.SetCurrentUser(context.Background(), "u-missing")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if st.CurrentUser().ID != "u1" {
		t.Error("identity moved despite rejection")
	}
}

// ============================================================================
// ListUsers / DeleteUser Tests
// ============================================================================

func TestListUsers_AdminOnly(t *testing.T) {
	svc, st := newUserService(t)
	addUser(t, st, "u2", snapshot.RoleInspector)

	users, err := svc.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("user count = %d, want 2", len(users))
	}

	switchUser(t, st, "u2")
	if _, err := svc.ListUsers(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for inspector, got %v", err)
	}
}

func TestDeleteUser_RemovesOtherUser(t *testing.T) {
	svc, st := newUserService(t)
	addUser(t, st, "u2", snapshot.RoleInspector)

	if err := svc.DeleteUser(context.Background(), "u2"); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}
	if st.Snapshot().UserByID("u2") != nil {
		t.Error("user still present after delete")
	}
}

func TestDeleteUser_CannotDeleteSelf(t *testing.T) {
	svc, st := newUserService(t)

	err := svc.DeleteUser(context.Background(), "u1")
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
	if st.Snapshot().UserByID("u1") == nil {
		t.Error("acting user was deleted")
	}
}

func TestDeleteUser_NonAdminRejected(t *testing.T) {
	svc, st := newUserService(t)
	addUser(t, st, "u2", snapshot.RoleInspector)
	switchUser(t, st, "u2")

	if err := svc.DeleteUser(context.Background(), "u1"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDeleteUser_AbsentIDIsNoOp(t *testing.T) {
	svc, _ := newUserService(t)

	if err := svc.DeleteUser(context.Background(), "u-missing"); err != nil {
		t.Errorf("delete of absent id should be silent, got %v", err)
	}
}

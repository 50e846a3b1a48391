package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/example/auditking/internal/core/action"
	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// ActionServiceImpl implements the ActionService interface.
type ActionServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

// NewActionService creates a new ActionService with injected dependencies.
func NewActionService(st *store.Store) *ActionServiceImpl {
	return &ActionServiceImpl{store: st, now: time.Now}
}

// CreateAction records a new open action owned by the acting user. A blank
// title is rejected with nothing recorded. The inspection/item links are
// stored by value and never checked: a dangling reference renders as "—"
// later, it is not an error now.
func (s *ActionServiceImpl) CreateAction(ctx context.Context, req primary.CreateActionRequest) (*snapshot.Action, error) {
	priority := req.Priority
	if priority == "" {
		priority = snapshot.PriorityMedium
	}

	guard := action.CanCreateAction(action.CreateContext{
		Title:         req.Title,
		Priority:      priority,
		PriorityKnown: snapshot.ValidPriority(priority),
	})
	if !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrValidation, guard.Reason)
	}

	actor := s.store.CurrentUser()
	act := snapshot.Action{
		ID:           s.nextID(),
		Title:        strings.TrimSpace(req.Title),
		InspectionID: req.InspectionID,
		ItemID:       req.ItemID,
		Priority:     priority,
		Status:       snapshot.ActionOpen,
		DueDate:      req.DueDate,
		Assignee:     req.Assignee,
		CreatedAt:    s.now().UTC(),
	}
	if actor != nil {
		act.OwnerID = actor.ID
	}

	err := s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		snap.Actions = append([]snapshot.Action{act}, snap.Actions...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &act, nil
}

// nextID generates a sequential action ID from the highest existing one.
func (s *ActionServiceImpl) nextID() string {
	maxID := 0
	for _, act := range s.store.Snapshot().Actions {
		var n int
		if _, err := fmt.Sscanf(act.ID, "ACT-%d", &n); err == nil && n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("ACT-%03d", maxID+1)
}

// UpdateAction merges a patch into the matching action. An absent id is a
// silent no-op (idempotent-update semantics).
func (s *ActionServiceImpl) UpdateAction(ctx context.Context, id string, patch primary.ActionPatch) error {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return fmt.Errorf("%w: action title cannot be empty", ErrValidation)
	}
	if patch.Priority != nil && !snapshot.ValidPriority(*patch.Priority) {
		return fmt.Errorf("%w: invalid priority %q", ErrValidation, *patch.Priority)
	}
	if patch.Status != nil && !snapshot.ValidActionStatus(*patch.Status) {
		return fmt.Errorf("%w: invalid status %q", ErrValidation, *patch.Status)
	}

	return s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		act := snap.ActionByID(id)
		if act == nil {
			return nil
		}
		if patch.Title != nil {
			act.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Priority != nil {
			act.Priority = *patch.Priority
		}
		if patch.Status != nil {
			act.Status = *patch.Status
		}
		if patch.DueDate != nil {
			act.DueDate = *patch.DueDate
		}
		if patch.Assignee != nil {
			act.Assignee = *patch.Assignee
		}
		return nil
	})
}

// DeleteAction removes an action. Admin only; an absent id is a silent
// no-op.
func (s *ActionServiceImpl) DeleteAction(ctx context.Context, id string) error {
	actor := s.store.CurrentUser()
	guard := action.CanDeleteAction(action.DeleteContext{IsAdmin: actor != nil && actor.HasRole(snapshot.RoleAdmin)})
	if !guard.Allowed {
		return fmt.Errorf("%w: %s", ErrUnauthorized, guard.Reason)
	}

	return s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		for i := range snap.Actions {
			if snap.Actions[i].ID == id {
				snap.Actions = append(snap.Actions[:i], snap.Actions[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

// ListActions returns every action in ledger order (newest first) with its
// soft inspection reference resolved for display.
func (s *ActionServiceImpl) ListActions(ctx context.Context) ([]primary.ActionListEntry, error) {
	snap := s.store.Snapshot()
	var out []primary.ActionListEntry
	for _, act := range snap.Actions {
		label := "—"
		if act.InspectionID != "" {
			if insp := snap.InspectionByID(act.InspectionID); insp != nil {
				label = insp.TemplateName
			}
		}
		out = append(out, primary.ActionListEntry{Action: act, InspectionLabel: label})
	}
	return out, nil
}

// Ensure ActionServiceImpl implements the interface
var _ primary.ActionService = (*ActionServiceImpl)(nil)

package primary

import (
	"context"

	"github.com/example/auditking/internal/snapshot"
)

// ActionService defines the primary port for remediation actions.
type ActionService interface {
	// CreateAction records a new open action. A blank title is rejected and
	// nothing is recorded.
	CreateAction(ctx context.Context, req CreateActionRequest) (*snapshot.Action, error)

	// UpdateAction merges a patch into the matching action. An absent id is
	// a silent no-op.
	UpdateAction(ctx context.Context, id string, patch ActionPatch) error

	// DeleteAction removes an action. Admin only; an absent id is a silent
	// no-op.
	DeleteAction(ctx context.Context, id string) error

	// ListActions returns every action, newest first, with its soft
	// inspection reference resolved for display ("—" when dangling).
	ListActions(ctx context.Context) ([]ActionListEntry, error)
}

// CreateActionRequest contains parameters for creating an action. The
// inspection/item links are soft references stored by value; they are never
// checked against the ledger.
type CreateActionRequest struct {
	Title        string
	Priority     string // defaults to medium
	InspectionID string
	ItemID       string
	DueDate      string
	Assignee     string
}

// ActionPatch is a shallow merge applied to an action. Nil fields leave the
// existing value untouched.
type ActionPatch struct {
	Title    *string
	Priority *string
	Status   *string
	DueDate  *string
	Assignee *string
}

// ActionListEntry pairs an action with the display form of its inspection
// reference.
type ActionListEntry struct {
	Action          snapshot.Action
	InspectionLabel string // template name of the linked inspection, or "—"
}

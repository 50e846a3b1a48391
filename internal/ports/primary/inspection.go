package primary

import (
	"context"

	"github.com/example/auditking/internal/snapshot"
)

// InspectionService defines the primary port for inspection runs.
type InspectionService interface {
	// StartInspection instantiates a draft from a template: one answer slot
	// per template item, in template order.
	StartInspection(ctx context.Context, templateID string) (*snapshot.Inspection, error)

	// GetInspection retrieves an inspection by ID.
	GetInspection(ctx context.Context, id string) (*snapshot.Inspection, error)

	// RecordAnswer merges a patch into the item at index. The index must be
	// within the draft's item count; an out-of-range index is a caller bug,
	// not recoverable input.
	RecordAnswer(ctx context.Context, id string, index int, patch AnswerPatch) error

	// AttachMedia appends one media reference to the item at index. Existing
	// media is kept; photos accumulate.
	AttachMedia(ctx context.Context, id string, index int, ref string) error

	// Validate returns the template item ids of required questions that are
	// still unanswered. Submission is not blocked on this; callers apply the
	// policy they want before submitting.
	Validate(ctx context.Context, id string) ([]string, error)

	// SubmitInspection freezes a draft: stamps score, submit time and owner.
	// A signature-required template needs a non-empty signature reference.
	SubmitInspection(ctx context.Context, req SubmitInspectionRequest) (*snapshot.Inspection, error)

	// ListInspections returns inspections newest-submitted first. With all
	// set it returns every user's records (admin/manager only), otherwise
	// only the acting user's.
	ListInspections(ctx context.Context, all bool) ([]snapshot.Inspection, error)
}

// AnswerPatch is a shallow merge applied to one inspection item. Nil fields
// leave the existing value untouched.
type AnswerPatch struct {
	Value any
	Pass  *bool
}

// SubmitInspectionRequest contains parameters for submitting a draft.
type SubmitInspectionRequest struct {
	InspectionID string
	Signature    string // opaque capture reference, stored verbatim
}

package app

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/example/auditking/internal/core/inspection"
	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// InspectionServiceImpl implements the InspectionService interface.
type InspectionServiceImpl struct {
	store *store.Store
	now   func() time.Time

	// defaultUnanswered leaves fresh yes/no slots unanswered instead of the
	// optimistic default-pass. Operators who worry about false-positive
	// reports flip this in config.
	defaultUnanswered bool
}

// NewInspectionService creates a new InspectionService with injected
// dependencies.
func NewInspectionService(st *store.Store, defaultUnanswered bool) *InspectionServiceImpl {
	return &InspectionServiceImpl{store: st, now: time.Now, defaultUnanswered: defaultUnanswered}
}

// StartInspection instantiates a draft from a template: one answer slot per
// template item, in template order, each with a fresh id and the kind and
// label copied so later template edits never touch this run.
func (s *InspectionServiceImpl) StartInspection(ctx context.Context, templateID string) (*snapshot.Inspection, error) {
	tpl := s.store.Snapshot().TemplateByID(templateID)
	if tpl == nil {
		return nil, fmt.Errorf("template %s %w", templateID, ErrNotFound)
	}

	items := make([]snapshot.InspectionItem, len(tpl.Items))
	for i, q := range tpl.Items {
		item := snapshot.InspectionItem{
			ID:    uuid.NewString(),
			QID:   q.ID,
			Kind:  q.Kind,
			Label: q.Label,
			Media: []string{},
		}
		if q.Kind == snapshot.KindYesNo && !s.defaultUnanswered {
			pass := true
			item.Value = true
			item.Pass = &pass
		}
		items[i] = item
	}

	draft := snapshot.Inspection{
		ID:           s.nextID(),
		TemplateID:   tpl.ID,
		TemplateName: tpl.Name,
		Site:         tpl.Site,
		Status:       snapshot.StatusInProgress,
		StartedAt:    s.now().UTC(),
		Items:        items,
	}

	err := s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		snap.Inspections = append([]snapshot.Inspection{draft}, snap.Inspections...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// nextID generates a sequential inspection ID from the highest existing one.
func (s *InspectionServiceImpl) nextID() string {
	maxID := 0
	for _, insp := range s.store.Snapshot().Inspections {
		var n int
		if _, err := fmt.Sscanf(insp.ID, "INS-%d", &n); err == nil && n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("INS-%03d", maxID+1)
}

// GetInspection retrieves an inspection by ID.
func (s *InspectionServiceImpl) GetInspection(ctx context.Context, id string) (*snapshot.Inspection, error) {
	insp := s.store.Snapshot().InspectionByID(id)
	if insp == nil {
		return nil, fmt.Errorf("inspection %s %w", id, ErrNotFound)
	}
	out := *insp
	return &out, nil
}

// RecordAnswer merges a patch into the item at index. Only drafts accept
// answers. Index bounds are the caller's contract: out of range panics.
func (s *InspectionServiceImpl) RecordAnswer(ctx context.Context, id string, index int, patch primary.AnswerPatch) error {
	return s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		insp := snap.InspectionByID(id)
		if insp == nil {
			return fmt.Errorf("inspection %s %w", id, ErrNotFound)
		}
		if insp.Status != snapshot.StatusInProgress {
			return fmt.Errorf("%w: inspection %s is already submitted", ErrValidation, id)
		}

		item := &insp.Items[index]
		if patch.Value != nil {
			item.Value = patch.Value
		}
		if patch.Pass != nil {
			item.Pass = patch.Pass
			item.Value = *patch.Pass
		}
		return nil
	})
}

// AttachMedia appends one media reference to the item at index; existing
// media accumulates.
func (s *InspectionServiceImpl) AttachMedia(ctx context.Context, id string, index int, ref string) error {
	return s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		insp := snap.InspectionByID(id)
		if insp == nil {
			return fmt.Errorf("inspection %s %w", id, ErrNotFound)
		}
		if insp.Status != snapshot.StatusInProgress {
			return fmt.Errorf("%w: inspection %s is already submitted", ErrValidation, id)
		}

		item := &insp.Items[index]
		item.Media = append(item.Media, ref)
		return nil
	})
}

// Validate returns the template item ids of required questions still
// unanswered. When the source template is gone there is nothing left to
// enforce and the draft validates clean.
func (s *InspectionServiceImpl) Validate(ctx context.Context, id string) ([]string, error) {
	snap := s.store.Snapshot()
	insp := snap.InspectionByID(id)
	if insp == nil {
		return nil, fmt.Errorf("inspection %s %w", id, ErrNotFound)
	}

	tpl := snap.TemplateByID(insp.TemplateID)
	if tpl == nil {
		return nil, nil
	}
	return inspection.Validate(tpl, insp.Items), nil
}

// SubmitInspection freezes a draft: stamps submit time, score and owner.
// Callers wanting required-item enforcement run Validate first; submit
// itself only enforces the signature precondition.
func (s *InspectionServiceImpl) SubmitInspection(ctx context.Context, req primary.SubmitInspectionRequest) (*snapshot.Inspection, error) {
	var out snapshot.Inspection
	err := s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		insp := snap.InspectionByID(req.InspectionID)
		if insp == nil {
			return fmt.Errorf("inspection %s %w", req.InspectionID, ErrNotFound)
		}

		signatureRequired := false
		if tpl := snap.TemplateByID(insp.TemplateID); tpl != nil {
			signatureRequired = tpl.SignatureRequired
		}

		guard := inspection.CanSubmit(inspection.SubmitContext{
			InspectionID:      insp.ID,
			Status:            insp.Status,
			SignatureRequired: signatureRequired,
			Signature:         req.Signature,
		})
		if !guard.Allowed {
			return fmt.Errorf("%w: %s", ErrValidation, guard.Reason)
		}

		actor := snap.CurrentUser()
		now := s.now().UTC()
		score := inspection.Score(insp.Items)

		insp.Status = snapshot.StatusSubmitted
		insp.SubmittedAt = &now
		insp.Score = &score
		insp.Signature = req.Signature
		if actor != nil {
			insp.OwnerID = actor.ID
			insp.OwnerName = actor.DisplayName()
		}
		out = *insp
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListInspections returns inspections newest-submitted first. With all set
// it returns every user's records, which only admins and managers may do.
func (s *InspectionServiceImpl) ListInspections(ctx context.Context, all bool) ([]snapshot.Inspection, error) {
	actor := s.store.CurrentUser()
	if actor == nil {
		return nil, fmt.Errorf("no active user %w", ErrNotFound)
	}

	if all {
		guard := inspection.CanViewAll(inspection.ViewAllContext{
			IsAdmin:   actor.HasRole(snapshot.RoleAdmin),
			IsManager: actor.HasRole(snapshot.RoleManager),
		})
		if !guard.Allowed {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, guard.Reason)
		}
	}

	var out []snapshot.Inspection
	for _, insp := range s.store.Snapshot().Inspections {
		// Legacy records without an owner count as the acting user's own.
		if !all && insp.OwnerID != "" && insp.OwnerID != actor.ID {
			continue
		}
		out = append(out, insp)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return sortStamp(out[i]).After(sortStamp(out[j]))
	})
	return out, nil
}

func sortStamp(insp snapshot.Inspection) time.Time {
	if insp.SubmittedAt != nil {
		return *insp.SubmittedAt
	}
	return insp.StartedAt
}

// Ensure InspectionServiceImpl implements the interface
var _ primary.InspectionService = (*InspectionServiceImpl)(nil)

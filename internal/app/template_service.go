package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/auditking/internal/core/checklist"
	"github.com/example/auditking/internal/core/template"
	"github.com/example/auditking/internal/ports/primary"
	"github.com/example/auditking/internal/snapshot"
	"github.com/example/auditking/internal/store"
)

// TemplateServiceImpl implements the TemplateService interface.
type TemplateServiceImpl struct {
	store *store.Store
	now   func() time.Time
}

// NewTemplateService creates a new TemplateService with injected dependencies.
func NewTemplateService(st *store.Store) *TemplateServiceImpl {
	return &TemplateServiceImpl{store: st, now: time.Now}
}

// SaveTemplate upserts a template: same id replaces in place, a new id is
// prepended to the catalog.
func (s *TemplateServiceImpl) SaveTemplate(ctx context.Context, req primary.SaveTemplateRequest) (*snapshot.Template, error) {
	name := strings.TrimSpace(req.Name)
	if guard := template.CanSaveTemplate(template.SaveContext{Name: name}); !guard.Allowed {
		return nil, fmt.Errorf("%w: %s", ErrValidation, guard.Reason)
	}

	tpl := snapshot.Template{
		ID:                req.ID,
		Name:              name,
		Description:       req.Description,
		Site:              req.Site,
		Instructions:      req.Instructions,
		LogoRef:           req.LogoRef,
		SignatureRequired: req.SignatureRequired,
		UpdatedAt:         s.now().UTC(),
		Items:             req.Items,
	}
	if tpl.ID == "" {
		tpl.ID = "tpl-" + uuid.NewString()
	}

	err := s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		for i := range snap.Templates {
			if snap.Templates[i].ID == tpl.ID {
				snap.Templates[i] = tpl
				return nil
			}
		}
		snap.Templates = append([]snapshot.Template{tpl}, snap.Templates...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

// ImportTemplate builds a template from free-form checklist text.
func (s *TemplateServiceImpl) ImportTemplate(ctx context.Context, req primary.ImportTemplateRequest) (*snapshot.Template, error) {
	return s.SaveTemplate(ctx, primary.SaveTemplateRequest{
		Name:              req.Name,
		Site:              req.Site,
		Description:       req.Description,
		SignatureRequired: req.SignatureRequired,
		Items:             checklist.Parse(req.Raw),
	})
}

// GetTemplate retrieves a template by ID.
func (s *TemplateServiceImpl) GetTemplate(ctx context.Context, id string) (*snapshot.Template, error) {
	tpl := s.store.Snapshot().TemplateByID(id)
	if tpl == nil {
		return nil, fmt.Errorf("template %s %w", id, ErrNotFound)
	}
	out := *tpl
	return &out, nil
}

// ListTemplates returns templates whose name contains the filter, keeping
// catalog order.
func (s *TemplateServiceImpl) ListTemplates(ctx context.Context, filter string) ([]snapshot.Template, error) {
	needle := strings.ToLower(filter)
	var out []snapshot.Template
	for _, tpl := range s.store.Snapshot().Templates {
		if needle == "" || strings.Contains(strings.ToLower(tpl.Name), needle) {
			out = append(out, tpl)
		}
	}
	return out, nil
}

// DeleteTemplate hard-removes a template. Submitted inspections keep their
// own denormalized copy, so no in-flight check is made.
func (s *TemplateServiceImpl) DeleteTemplate(ctx context.Context, id string) error {
	actor := s.store.CurrentUser()
	guard := template.CanDeleteTemplate(template.DeleteContext{IsAdmin: actor != nil && actor.HasRole(snapshot.RoleAdmin)})
	if !guard.Allowed {
		return fmt.Errorf("%w: %s", ErrUnauthorized, guard.Reason)
	}

	return s.store.Mutate(ctx, func(snap *snapshot.Snapshot) error {
		for i := range snap.Templates {
			if snap.Templates[i].ID == id {
				snap.Templates = append(snap.Templates[:i], snap.Templates[i+1:]...)
				return nil
			}
		}
		// Absent id: idempotent-delete semantics, nothing to report.
		return nil
	})
}

// Ensure TemplateServiceImpl implements the interface
var _ primary.TemplateService = (*TemplateServiceImpl)(nil)

// Package primary defines the driving ports: the service interfaces the CLI
// (or any other surface) talks to, plus their request/response types.
package primary

import (
	"context"

	"github.com/example/auditking/internal/snapshot"
)

// TemplateService defines the primary port for checklist template operations.
type TemplateService interface {
	// SaveTemplate upserts a template: an existing id is replaced in place,
	// a new one is prepended to the catalog.
	SaveTemplate(ctx context.Context, req SaveTemplateRequest) (*snapshot.Template, error)

	// ImportTemplate builds a template from free-form checklist text.
	ImportTemplate(ctx context.Context, req ImportTemplateRequest) (*snapshot.Template, error)

	// GetTemplate retrieves a template by ID.
	GetTemplate(ctx context.Context, id string) (*snapshot.Template, error)

	// ListTemplates returns templates whose name contains the filter
	// (case-insensitive), in catalog order.
	ListTemplates(ctx context.Context, filter string) ([]snapshot.Template, error)

	// DeleteTemplate hard-removes a template. Admin only; an absent id is a
	// silent no-op.
	DeleteTemplate(ctx context.Context, id string) error
}

// SaveTemplateRequest contains parameters for saving a template. An empty ID
// creates a new template.
type SaveTemplateRequest struct {
	ID                string
	Name              string
	Description       string
	Site              string
	Instructions      string
	LogoRef           string
	SignatureRequired bool
	Items             []snapshot.TemplateItem
}

// ImportTemplateRequest contains parameters for the text import path.
type ImportTemplateRequest struct {
	Name              string
	Site              string
	Description       string
	SignatureRequired bool
	Raw               string
}

package snapshot

import "time"

// seedTime keeps the seed snapshot byte-for-byte deterministic across runs.
var seedTime = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// Seed returns the deterministic starter snapshot used whenever no valid
// persisted snapshot exists: one admin user and two example templates.
func Seed() *Snapshot {
	return &Snapshot{
		Users: []User{
			{ID: "u1", Email: "admin@auditking.app", Name: "Audit King Admin", Roles: []Role{RoleAdmin}},
		},
		CurrentUserID: "u1",
		Templates: []Template{
			{
				ID:          "tpl-1",
				Name:        "General Safety Walkthrough",
				Description: "Basic site walkthrough",
				Site:        "All Sites",
				UpdatedAt:   seedTime,
				Items: []TemplateItem{
					{ID: "ppe-helm", Kind: KindYesNo, Label: "Hard hats worn?", Required: true},
					{ID: "ppe-photo", Kind: KindPhoto, Label: "Photo evidence"},
				},
			},
			{
				ID:          "tpl-2",
				Name:        "Warehouse Daily Check",
				Description: "Daily DC checks",
				Site:        "Manchester DC",
				UpdatedAt:   seedTime,
				Items: []TemplateItem{
					{ID: "walkways", Kind: KindYesNo, Label: "Walkways clear?"},
					{ID: "fire-tag", Kind: KindYesNo, Label: "Fire extinguishers tagged?"},
					{ID: "notes", Kind: KindText, Label: "Notes"},
				},
			},
		},
		Inspections: []Inspection{},
		Actions:     []Action{},
	}
}

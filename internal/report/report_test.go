package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/example/auditking/internal/snapshot"
)

func boolPtr(b bool) *bool { return &b }

func TestProject(t *testing.T) {
	submitted := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	score := 50

	insp := &snapshot.Inspection{
		ID:           "INS-001",
		TemplateID:   "tpl-1",
		TemplateName: "General Safety Walkthrough",
		Site:         "All Sites",
		Status:       snapshot.StatusSubmitted,
		StartedAt:    submitted.Add(-time.Hour),
		SubmittedAt:  &submitted,
		Score:        &score,
		OwnerName:    "Audit King Admin",
		Items: []snapshot.InspectionItem{
			{ID: "a", QID: "q1", Kind: snapshot.KindYesNo, Label: "Hard hats worn?", Pass: boolPtr(true)},
			{ID: "b", QID: "q2", Kind: snapshot.KindYesNo, Label: "Walkways clear?", Pass: boolPtr(false)},
			{ID: "c", QID: "q3", Kind: snapshot.KindText, Label: "Notes", Value: "two near misses"},
			{ID: "d", QID: "q4", Kind: snapshot.KindPhoto, Label: "Evidence", Media: []string{"data:image/png;base64,AAAA"}},
		},
	}

	r := Project(insp)

	if r.TemplateName != "General Safety Walkthrough" || r.Site != "All Sites" {
		t.Errorf("header fields wrong: %+v", r)
	}
	if r.Score == nil || *r.Score != 50 {
		t.Errorf("score = %v, want 50", r.Score)
	}
	if r.Inspector != "Audit King Admin" {
		t.Errorf("inspector = %q", r.Inspector)
	}
	if len(r.Entries) != len(insp.Items) {
		t.Fatalf("entry count = %d, want %d", len(r.Entries), len(insp.Items))
	}

	if !r.Entries[0].IsYesNo || !r.Entries[0].Pass {
		t.Error("entry 1 should be a passing yes/no badge")
	}
	if !r.Entries[1].IsYesNo || r.Entries[1].Pass {
		t.Error("entry 2 should be a failing yes/no badge")
	}
	if r.Entries[2].Value != "two near misses" {
		t.Errorf("entry 3 value = %q", r.Entries[2].Value)
	}
	if len(r.Entries[3].Media) != 1 {
		t.Errorf("entry 4 media = %v", r.Entries[3].Media)
	}

	for i, e := range r.Entries {
		if e.Ordinal != i+1 {
			t.Errorf("entry %d ordinal = %d", i, e.Ordinal)
		}
	}
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	insp := &snapshot.Inspection{
		ID:    "INS-001",
		Items: []snapshot.InspectionItem{{ID: "a", Kind: snapshot.KindText, Label: "Notes", Value: "x"}},
	}
	before, _ := json.Marshal(insp)
	Project(insp)
	after, _ := json.Marshal(insp)
	if string(before) != string(after) {
		t.Error("Project mutated its input")
	}
}

func TestRenderValue_Numbers(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"unset", nil, ""},
		{"whole float prints as integer", float64(42), "42"},
		{"fractional float keeps fraction", 3.5, "3.5"},
		{"string passthrough", "17", "17"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renderValue(snapshot.InspectionItem{Kind: snapshot.KindNumber, Value: tt.value})
			if got != tt.want {
				t.Errorf("renderValue = %q, want %q", got, tt.want)
			}
		})
	}
}

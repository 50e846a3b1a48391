package snapshot

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func TestSeed_Shape(t *testing.T) {
	s := Seed()

	if len(s.Users) != 1 {
		t.Fatalf("expected exactly one seed user, got %d", len(s.Users))
	}
	if len(s.Templates) != 2 {
		t.Fatalf("expected exactly two seed templates, got %d", len(s.Templates))
	}
	if len(s.Inspections) != 0 || len(s.Actions) != 0 {
		t.Error("expected empty inspections and actions in seed")
	}
	if s.CurrentUserID != "u1" {
		t.Errorf("expected current user 'u1', got %q", s.CurrentUserID)
	}
	if !s.Users[0].HasRole(RoleAdmin) {
		t.Error("expected seed user to be admin")
	}
}

func TestSeed_Deterministic(t *testing.T) {
	a, _ := json.Marshal(Seed())
	b, _ := json.Marshal(Seed())
	if string(a) != string(b) {
		t.Error("seed snapshot is not deterministic")
	}
}

func TestSnapshot_JSONRoundTrip(t *testing.T) {
	submitted := time.Date(2025, 3, 4, 10, 30, 0, 0, time.UTC)
	score := 67
	pass := false

	s := Seed()
	s.Inspections = []Inspection{
		{
			ID:           "INS-001",
			TemplateID:   "tpl-2",
			TemplateName: "Warehouse Daily Check",
			Site:         "Manchester DC",
			Status:       StatusSubmitted,
			StartedAt:    submitted.Add(-time.Hour),
			SubmittedAt:  &submitted,
			Score:        &score,
			OwnerID:      "u1",
			OwnerName:    "Audit King Admin",
			Items: []InspectionItem{
				{ID: "a", QID: "walkways", Kind: KindYesNo, Label: "Walkways clear?", Value: true, Pass: &pass, Media: []string{"data:image/png;base64,AAAA"}},
				{ID: "b", QID: "notes", Kind: KindText, Label: "Notes", Value: "all fine"},
			},
		},
	}
	s.Actions = []Action{
		{ID: "ACT-001", Title: "Clear walkway 3", InspectionID: "INS-001", ItemID: "a", Priority: PriorityHigh, Status: ActionOpen, CreatedAt: submitted, OwnerID: "u1"},
	}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var back Snapshot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	again, err := json.Marshal(&back)
	if err != nil {
		t.Fatalf("re-marshal failed: %v", err)
	}
	if string(data) != string(again) {
		t.Error("snapshot JSON round-trip is not lossless")
	}

	got := back.Inspections[0]
	if got.Score == nil || *got.Score != 67 {
		t.Errorf("score lost in round-trip: %v", got.Score)
	}
	if got.Items[0].Pass == nil || *got.Items[0].Pass {
		t.Errorf("pass flag lost in round-trip: %v", got.Items[0].Pass)
	}
	if !reflect.DeepEqual(got.Items[0].Media, []string{"data:image/png;base64,AAAA"}) {
		t.Errorf("media lost in round-trip: %v", got.Items[0].Media)
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	s := Seed()

	if s.TemplateByID("tpl-2") == nil {
		t.Error("expected to find tpl-2")
	}
	if s.TemplateByID("tpl-999") != nil {
		t.Error("expected nil for unknown template id")
	}
	if s.InspectionByID("nope") != nil || s.ActionByID("nope") != nil {
		t.Error("expected nil lookups on empty collections")
	}

	// Dangling current-user pointer falls back to the first user.
	s.CurrentUserID = "ghost"
	if u := s.CurrentUser(); u == nil || u.ID != "u1" {
		t.Errorf("expected fallback to first user, got %v", u)
	}
}

func TestUser_DisplayName(t *testing.T) {
	u := User{Email: "x@y.z"}
	if u.DisplayName() != "x@y.z" {
		t.Errorf("expected email fallback, got %q", u.DisplayName())
	}
	u.Name = "Xavier"
	if u.DisplayName() != "Xavier" {
		t.Errorf("expected name, got %q", u.DisplayName())
	}
}

package template

import "testing"

func TestCanSaveTemplate(t *testing.T) {
	tests := []struct {
		name        string
		ctx         SaveContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "named template may be saved",
			ctx:         SaveContext{Name: "Warehouse Daily Check"},
			wantAllowed: true,
		},
		{
			name:        "empty name rejected",
			ctx:         SaveContext{Name: ""},
			wantAllowed: false,
			wantReason:  "template name cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSaveTemplate(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestCanDeleteTemplate(t *testing.T) {
	tests := []struct {
		name        string
		ctx         DeleteContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "admin may delete",
			ctx:         DeleteContext{IsAdmin: true},
			wantAllowed: true,
		},
		{
			name:        "non-admin may not delete",
			ctx:         DeleteContext{IsAdmin: false},
			wantAllowed: false,
			wantReason:  "only admins can delete templates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanDeleteTemplate(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

package inspection

import "testing"

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name        string
		ctx         SubmitContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name: "in-progress draft without signature requirement",
			ctx: SubmitContext{
				InspectionID: "INS-001",
				Status:       "in_progress",
			},
			wantAllowed: true,
		},
		{
			name: "signature required and provided",
			ctx: SubmitContext{
				InspectionID:      "INS-001",
				Status:            "in_progress",
				SignatureRequired: true,
				Signature:         "data:image/png;base64,AAAA",
			},
			wantAllowed: true,
		},
		{
			name: "signature required but missing",
			ctx: SubmitContext{
				InspectionID:      "INS-001",
				Status:            "in_progress",
				SignatureRequired: true,
			},
			wantAllowed: false,
			wantReason:  "this template requires a signature before submission",
		},
		{
			name: "already submitted",
			ctx: SubmitContext{
				InspectionID: "INS-002",
				Status:       "submitted",
			},
			wantAllowed: false,
			wantReason:  "inspection INS-002 is already submitted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSubmit(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("Error() = %v, want nil", result.Error())
			}
		})
	}
}

func TestCanViewAll(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ViewAllContext
		wantAllowed bool
	}{
		{name: "admin may view all", ctx: ViewAllContext{IsAdmin: true}, wantAllowed: true},
		{name: "manager may view all", ctx: ViewAllContext{IsManager: true}, wantAllowed: true},
		{name: "inspector may not", ctx: ViewAllContext{}, wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanViewAll(tt.ctx)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
		})
	}
}

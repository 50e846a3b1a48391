package inspection

import "fmt"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SubmitContext provides context for submit guards.
type SubmitContext struct {
	InspectionID      string
	Status            string
	SignatureRequired bool
	Signature         string
}

// CanSubmit evaluates whether a draft can be submitted.
// Rules:
// - Draft must still be in progress
// - A signature-required template needs a non-empty signature capture
func CanSubmit(ctx SubmitContext) GuardResult {
	if ctx.Status != "in_progress" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("inspection %s is already submitted", ctx.InspectionID),
		}
	}

	if ctx.SignatureRequired && ctx.Signature == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "this template requires a signature before submission",
		}
	}

	return GuardResult{Allowed: true}
}

// ViewAllContext provides context for the all-users listing guard.
type ViewAllContext struct {
	IsAdmin   bool
	IsManager bool
}

// CanViewAll evaluates whether the acting user may list every user's
// inspections rather than only their own.
func CanViewAll(ctx ViewAllContext) GuardResult {
	if !ctx.IsAdmin && !ctx.IsManager {
		return GuardResult{
			Allowed: false,
			Reason:  "only admins and managers can view all inspections",
		}
	}
	return GuardResult{Allowed: true}
}

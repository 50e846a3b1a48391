// Package template contains the pure business logic for template operations.
// Guards are pure functions that evaluate preconditions without side effects.
package template

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

// SaveContext provides context for template save guards.
type SaveContext struct {
	Name string
}

// CanSaveTemplate evaluates whether a template can be saved.
// Rules:
// - Name must be non-empty after trimming
func CanSaveTemplate(ctx SaveContext) GuardResult {
	if ctx.Name == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "template name cannot be empty",
		}
	}
	return GuardResult{Allowed: true}
}

// DeleteContext provides context for template delete guards.
type DeleteContext struct {
	IsAdmin bool
}

// CanDeleteTemplate evaluates whether a template can be deleted.
// Rules:
// - Only admins delete templates. Submitted inspections keep their own
//   denormalized copy, so no in-flight check is needed.
func CanDeleteTemplate(ctx DeleteContext) GuardResult {
	if !ctx.IsAdmin {
		return GuardResult{
			Allowed: false,
			Reason:  "only admins can delete templates",
		}
	}
	return GuardResult{Allowed: true}
}

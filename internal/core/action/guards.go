// Package action contains the pure business logic for remediation actions.
// Guards are pure functions that evaluate preconditions without side effects.
package action

import (
	"fmt"
	"strings"
)

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

// CreateContext provides context for action creation guards.
type CreateContext struct {
	Title         string
	Priority      string
	PriorityKnown bool // only checked if Priority != ""
}

// CanCreateAction evaluates whether an action can be created.
// Rules:
// - Title must be non-empty after trimming
// - Priority must be a known value when provided
func CanCreateAction(ctx CreateContext) GuardResult {
	if strings.TrimSpace(ctx.Title) == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "action title cannot be empty",
		}
	}

	if ctx.Priority != "" && !ctx.PriorityKnown {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid priority %q (valid: low, medium, high, critical)", ctx.Priority),
		}
	}

	return GuardResult{Allowed: true}
}

// DeleteContext provides context for action delete guards.
type DeleteContext struct {
	IsAdmin bool
}

// CanDeleteAction evaluates whether an action can be deleted.
// Rules:
// - Only admins delete actions
func CanDeleteAction(ctx DeleteContext) GuardResult {
	if !ctx.IsAdmin {
		return GuardResult{
			Allowed: false,
			Reason:  "only admins can delete actions",
		}
	}
	return GuardResult{Allowed: true}
}

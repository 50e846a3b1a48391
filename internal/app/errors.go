// Package app implements the primary ports on top of the record store.
package app

import "errors"

// Sentinel errors for the failure taxonomy. Callers classify with errors.Is:
// validation and authorization failures reject the operation with no state
// change; not-found on update/delete paths is a silent no-op and never
// surfaces through these.
var (
	// ErrValidation marks a rejected operation due to bad input, e.g. a
	// blank action title.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized marks an operation the acting user's roles do not
	// permit, e.g. a non-admin delete.
	ErrUnauthorized = errors.New("not authorized")

	// ErrNotFound marks a read of an absent record.
	ErrNotFound = errors.New("not found")
)

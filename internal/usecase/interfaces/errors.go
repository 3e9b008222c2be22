package interfaces

import (
	"errors"
	"fmt"
)

// Storage error taxonomy. Repositories classify raw driver errors into
// these exactly once, at the gateway boundary; use cases and handlers only
// ever see this taxonomy.

// ConflictError is a uniqueness violation, naming the offending field.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return "conflict on field " + e.Field
}

// PersistenceError wraps an unexpected storage failure. The internal cause
// is kept for logging and must never reach the caller's response body.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failure in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsConflict reports whether err is a uniqueness conflict on field. An
// empty field matches any conflict.
func IsConflict(err error, field string) bool {
	var ce *ConflictError
	if !errors.As(err, &ce) {
		return false
	}
	return field == "" || ce.Field == field
}

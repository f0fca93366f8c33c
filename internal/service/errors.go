package service

import "errors"

// ValidationError reports a missing or malformed request field.  No store
// mutation is ever attempted before validation passes.
type ValidationError struct {
    Field string
}

func (e *ValidationError) Error() string { return "missing field: " + e.Field }

// ErrInvalidTransition is returned when a status update would leave the
// cancelled state or name an unknown status.  Cancelled is terminal.
var ErrInvalidTransition = errors.New("invalid status transition")

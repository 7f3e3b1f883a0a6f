package scouting

import (
	"errors"
	"fmt"
)

// ErrAuth is returned when a delete-code check fails.
var ErrAuth = errors.New("incorrect code")

// ErrBadImport is returned when a team import file is not a recognizable
// list of teams. The registry is left unchanged.
var ErrBadImport = errors.New("invalid team import file")

// ValidationError reports a missing or malformed required input. The
// operation that returned it made no state change.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

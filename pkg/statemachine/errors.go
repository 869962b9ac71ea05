package statemachine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidTransition  = errors.New("statemachine: invalid transition")
	ErrInvalidEvent       = errors.New("statemachine: invalid event")
	ErrTransitionRejected = errors.New("statemachine: transition rejected by guards")
)

// NoTransitionError is returned when nothing is registered for an event in
// the current state.
type NoTransitionError struct {
	State string
	Event string
}

func (e NoTransitionError) Error() string {
	return fmt.Sprintf("statemachine: no transition for event %q in state %q", e.Event, e.State)
}

// IsNoTransition reports whether err is a NoTransitionError.
func IsNoTransition(err error) bool {
	var nt NoTransitionError
	return errors.As(err, &nt)
}

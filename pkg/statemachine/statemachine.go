// Package statemachine is a small guarded finite state machine. Transitions
// are keyed by source state and event; when several share a key the first
// one whose guards pass is taken, so registration order sets priority.
package statemachine

import "context"

type State interface {
	Name() string
}

type Event interface {
	Name() string
}

// Guard decides whether a transition may be taken.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Action runs before the state changes. An error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event, data any) error

type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

func (t Transition) allowed(ctx context.Context, from State, event Event, data any) bool {
	for _, g := range t.Guards {
		if g != nil && !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}

type StringState string

func (s StringState) Name() string { return string(s) }

type StringEvent string

func (e StringEvent) Name() string { return string(e) }

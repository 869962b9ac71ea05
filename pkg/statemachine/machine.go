package statemachine

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Machine is an in-memory state machine safe for concurrent use.
type Machine struct {
	current     State
	transitions map[string]map[string][]Transition
	mu          sync.RWMutex
}

// Option configures a machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards and actions to one transition.
type TransitionOption func(*Transition)

func New(initial State, opts ...Option) (*Machine, error) {
	if initial == nil {
		return nil, errors.Join(ErrInvalidTransition, errors.New("nil initial state"))
	}
	m := &Machine{
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// WithTransition registers from --event--> to.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		return m.AddTransition(t)
	}
}

func WithGuard(g Guard) TransitionOption {
	return func(t *Transition) {
		if g != nil {
			t.Guards = append(t.Guards, g)
		}
	}
}

func WithAction(a Action) TransitionOption {
	return func(t *Transition) {
		if a != nil {
			t.Actions = append(t.Actions, a)
		}
	}
}

func (m *Machine) AddTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[t.From.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[t.From.Name()] = byEvent
	}
	byEvent[t.Event.Name()] = append(byEvent[t.Event.Name()], t)
	return nil
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire takes the first allowed transition for event from the current state.
// Actions run while the machine is locked and must not call back into it.
func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	from := m.current
	candidates := m.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		return NoTransitionError{State: from.Name(), Event: event.Name()}
	}

	for _, t := range candidates {
		if !t.allowed(ctx, from, event, data) {
			continue
		}
		for _, action := range t.Actions {
			if action == nil {
				continue
			}
			if err := action(ctx, from, t.To, event, data); err != nil {
				return fmt.Errorf("statemachine: action %s -> %s: %w", from.Name(), t.To.Name(), err)
			}
		}
		m.current = t.To
		return nil
	}
	return fmt.Errorf("%w: %s on %s", ErrTransitionRejected, event.Name(), from.Name())
}

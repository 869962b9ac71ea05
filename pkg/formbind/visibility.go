package formbind

import (
	"context"
	"errors"

	"github.com/dmitrymomot/passcheck/pkg/logger"
	"github.com/dmitrymomot/passcheck/pkg/statemachine"
)

// Triggers of panel visibility. Fire carries the input value as data.
const (
	triggerFocus  statemachine.StringEvent = "focus"
	triggerInput  statemachine.StringEvent = "input"
	triggerReject statemachine.StringEvent = "reject"
)

// Name makes Visibility a machine state.
func (v Visibility) Name() string { return v.String() }

// newVisibility builds the panel machine. Focus shows the panel unless an
// optional field is empty; input hides it when an optional field is cleared
// and shows it otherwise; a rejected submit always shows it.
func (b *Binding) newVisibility() (*statemachine.Machine, error) {
	var opts []statemachine.Option
	for _, from := range []Visibility{Hidden, Visible} {
		opts = append(opts,
			statemachine.WithTransition(from, Visible, triggerFocus,
				statemachine.WithGuard(b.hasContent),
				statemachine.WithAction(b.showPanel),
			),
			statemachine.WithTransition(from, Hidden, triggerInput,
				statemachine.WithGuard(b.clearedOptional),
				statemachine.WithAction(b.hidePanel),
			),
			statemachine.WithTransition(from, Visible, triggerInput,
				statemachine.WithAction(b.showPanel),
			),
			statemachine.WithTransition(from, Visible, triggerReject,
				statemachine.WithAction(b.showPanel),
			),
		)
	}
	return statemachine.New(Hidden, opts...)
}

func (b *Binding) clearedOptional(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	value, _ := data.(string)
	return b.emptyOptional(value)
}

func (b *Binding) hasContent(ctx context.Context, from statemachine.State, event statemachine.Event, data any) bool {
	return !b.clearedOptional(ctx, from, event, data)
}

func (b *Binding) showPanel(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	b.panel.Show()
	return nil
}

func (b *Binding) hidePanel(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
	b.panel.Hide()
	b.panel.Reset()
	return nil
}

// fire moves the panel. A guard rejection leaves it where it is.
func (b *Binding) fire(trigger statemachine.StringEvent, value string) {
	err := b.visibility.Fire(context.Background(), trigger, value)
	if err != nil && !errors.Is(err, statemachine.ErrTransitionRejected) {
		b.logger.Warn("panel transition failed", logger.Error(err))
	}
}

package formbind

import (
	"errors"
	"log/slog"

	"github.com/dmitrymomot/passcheck/pkg/dom"
	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/password"
	"github.com/dmitrymomot/passcheck/pkg/statemachine"
)

// Binding ties one password input, its optional form and one feedback panel.
type Binding struct {
	surface  dom.Surface
	input    dom.Element
	form     dom.Element
	panel    *feedback.Panel
	engine   *password.Engine
	notifier Notifier
	optional bool
	logger   *slog.Logger

	visibility *statemachine.Machine
	validity   Validity
}

// Bind attaches validation to the input with inputID. The form is looked up
// by formID; without it only live feedback is installed. The stylesheet is
// not touched; apply feedback.EnsureStylesheet once at startup.
func Bind(s dom.Surface, inputID, formID string, opts ...Option) (*Binding, error) {
	if s == nil {
		return nil, ErrNilSurface
	}

	b := &Binding{
		surface: s,
		engine:  password.New(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With(slog.String("input_id", inputID))

	input, ok := s.FindByID(inputID)
	if !ok {
		b.logger.Debug("password input not found")
		return nil, ErrInputNotFound
	}
	b.input = input

	if form, ok := s.FindByID(formID); ok {
		b.form = form
	} else {
		b.logger.Debug("form not found, submit guard disabled", slog.String("form_id", formID))
	}

	panel, err := feedback.Create(s, input, b.engine.Messages())
	if err != nil {
		return nil, errors.Join(ErrPanelCreate, err)
	}
	b.panel = panel

	visibility, err := b.newVisibility()
	if err != nil {
		return nil, errors.Join(ErrPanelCreate, err)
	}
	b.visibility = visibility

	if b.notifier == nil {
		inline, err := NewInlineNotifier(s, input)
		if err != nil {
			return nil, errors.Join(ErrPanelCreate, err)
		}
		b.notifier = inline
	}

	s.AddEventListener(input, dom.EventFocus, b.onFocus)
	s.AddEventListener(input, dom.EventInput, b.onInput)
	if b.form != nil {
		s.AddEventListener(b.form, dom.EventSubmit, b.onSubmit)
	}

	b.logger.Debug("password validation bound", slog.Bool("optional", b.optional), slog.Bool("form", b.form != nil))
	return b, nil
}

// Setup binds like Bind and reports whether the input was found and bound.
func Setup(s dom.Surface, inputID, formID string, optional bool, opts ...Option) bool {
	_, err := Bind(s, inputID, formID, append(opts, WithOptional(optional))...)
	return err == nil
}

// State returns the current panel visibility and input validity.
func (b *Binding) State() State {
	v, _ := b.visibility.Current().(Visibility)
	return State{Visibility: v, Validity: b.validity}
}

// Panel returns the feedback panel owned by the binding.
func (b *Binding) Panel() *feedback.Panel { return b.panel }

// Input returns the bound input.
func (b *Binding) Input() dom.Element { return b.input }

// Form returns the bound form, or nil.
func (b *Binding) Form() dom.Element { return b.form }

func (b *Binding) emptyOptional(value string) bool {
	return b.optional && value == ""
}

func (b *Binding) onFocus(dom.Event) {
	b.fire(triggerFocus, b.input.Value())
}

func (b *Binding) onInput(dom.Event) {
	value := b.input.Value()
	b.fire(triggerInput, value)
	if b.emptyOptional(value) {
		b.setValidity(Neutral)
		b.notifier.Clear()
		return
	}

	res := b.engine.Validate(value)
	b.panel.Update(res)
	if res.Valid {
		b.setValidity(Valid)
		b.notifier.Clear()
		return
	}
	b.setValidity(Invalid)
}

func (b *Binding) onSubmit(e dom.Event) {
	value := b.input.Value()
	if b.emptyOptional(value) {
		return
	}
	res := b.engine.Validate(value)
	if res.Valid {
		return
	}

	e.PreventDefault()
	b.panel.Update(res)
	b.setValidity(Invalid)
	b.fire(triggerReject, value)
	b.input.Focus()
	b.notifier.Notify(b.engine.Messages().SubmitBlocked)
	b.logger.Debug("submit blocked", slog.Int("failed_rules", len(res.Failed())))
}

func (b *Binding) setValidity(v Validity) {
	b.input.RemoveClass(ClassValid, ClassInvalid)
	switch v {
	case Valid:
		b.input.AddClass(ClassValid)
	case Invalid:
		b.input.AddClass(ClassInvalid)
	}
	b.validity = v
}

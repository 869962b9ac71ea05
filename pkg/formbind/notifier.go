package formbind

import (
	"github.com/dmitrymomot/passcheck/pkg/dom"
)

// ClassError marks the inline error region.
const ClassError = "password-error"

// Notifier tells the user why submission was blocked.
// Notify must not block.
type Notifier interface {
	Notify(message string)
	Clear()
}

// NotifierFunc adapts a function to Notifier. Clear is a no-op.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }
func (f NotifierFunc) Clear()                {}

// InlineNotifier writes messages into an alert region placed after the input.
type InlineNotifier struct {
	region dom.Element
}

// NewInlineNotifier appends a hidden, empty alert region to the parent of
// input. The region id is derived from the input id.
func NewInlineNotifier(s dom.Surface, input dom.Element) (*InlineNotifier, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if input == nil {
		return nil, ErrInputNotFound
	}
	parent := input.Parent()
	if parent == nil {
		return nil, ErrPanelCreate
	}

	region := s.CreateElement("div")
	region.AddClass(ClassError)
	region.SetAttr("role", "alert")
	if id := input.ID(); id != "" {
		region.SetAttr("id", id+"-error")
	}
	region.Hide()
	if err := s.AppendChild(parent, region); err != nil {
		return nil, err
	}
	return &InlineNotifier{region: region}, nil
}

// Notify shows message in the region.
func (n *InlineNotifier) Notify(message string) {
	n.region.SetText(message)
	n.region.Show()
}

// Clear empties and hides the region.
func (n *InlineNotifier) Clear() {
	n.region.SetText("")
	n.region.Hide()
}

// Element returns the alert region.
func (n *InlineNotifier) Element() dom.Element { return n.region }

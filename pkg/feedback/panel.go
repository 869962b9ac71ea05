package feedback

import (
	"github.com/dmitrymomot/passcheck/pkg/dom"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

// Class names and glyphs shared by the surface and templ renderers.
const (
	ClassPanel        = "password-feedback"
	ClassInstructions = "password-instructions"
	ClassRules        = "password-rules"
	ClassItem         = "rule-item"
	ClassIcon         = "rule-icon"
	ClassText         = "rule-text"
	ClassPassed       = "passed"
	ClassFailed       = "failed"

	AttrRule = "data-rule"

	GlyphNeutral = "○"
	GlyphPassed  = "✓"
	GlyphFailed  = "✗"
)

// PanelID returns the id given to the panel of the input with inputID.
func PanelID(inputID string) string {
	if inputID == "" {
		return ""
	}
	return inputID + "-feedback"
}

type row struct {
	item dom.Element
	icon dom.Element
}

// Panel is a checklist rendered on a surface. It is owned by one binding.
type Panel struct {
	root  dom.Element
	rows  map[string]row
	order []string
}

// Create builds a hidden, neutral panel and appends it to the parent of
// target, so it follows the input.
func Create(s dom.Surface, target dom.Element, msgs password.Messages) (*Panel, error) {
	if s == nil {
		return nil, ErrNilSurface
	}
	if target == nil {
		return nil, ErrNoTarget
	}
	parent := target.Parent()
	if parent == nil {
		return nil, ErrNoParent
	}

	root := s.CreateElement("div")
	root.AddClass(ClassPanel)
	if id := PanelID(target.ID()); id != "" {
		root.SetAttr("id", id)
	}

	instructions := s.CreateElement("small")
	instructions.AddClass(ClassInstructions)
	instructions.SetText(msgs.Instructions)

	list := s.CreateElement("div")
	list.AddClass(ClassRules)

	p := &Panel{root: root, rows: make(map[string]row)}
	for _, name := range password.RuleNames() {
		item := s.CreateElement("div")
		item.AddClass(ClassItem)
		item.SetAttr(AttrRule, name)

		icon := s.CreateElement("span")
		icon.AddClass(ClassIcon)
		icon.SetText(GlyphNeutral)

		text := s.CreateElement("span")
		text.AddClass(ClassText)
		text.SetText(msgs.For(name))

		if err := appendAll(s, item, icon, text); err != nil {
			return nil, err
		}
		if err := s.AppendChild(list, item); err != nil {
			return nil, err
		}
		p.rows[name] = row{item: item, icon: icon}
		p.order = append(p.order, name)
	}

	if err := appendAll(s, root, instructions, list); err != nil {
		return nil, err
	}
	root.Hide()
	if err := s.AppendChild(parent, root); err != nil {
		return nil, err
	}
	return p, nil
}

func appendAll(s dom.Surface, parent dom.Element, children ...dom.Element) error {
	for _, c := range children {
		if err := s.AppendChild(parent, c); err != nil {
			return err
		}
	}
	return nil
}

// Element returns the panel container.
func (p *Panel) Element() dom.Element { return p.root }

func (p *Panel) Show()         { p.root.Show() }
func (p *Panel) Hide()         { p.root.Hide() }
func (p *Panel) Visible() bool { return p.root.Visible() }

// Update marks every row of res as passed or failed.
// Rules unknown to the panel are skipped.
func (p *Panel) Update(res password.Result) {
	for _, rr := range res.Rules {
		r, ok := p.rows[rr.Name]
		if !ok {
			continue
		}
		r.item.RemoveClass(ClassPassed, ClassFailed)
		if rr.Passed {
			r.item.AddClass(ClassPassed)
			r.icon.SetText(GlyphPassed)
		} else {
			r.item.AddClass(ClassFailed)
			r.icon.SetText(GlyphFailed)
		}
	}
}

// Reset returns every row to neutral.
func (p *Panel) Reset() {
	for _, name := range p.order {
		r := p.rows[name]
		r.item.RemoveClass(ClassPassed, ClassFailed)
		r.icon.SetText(GlyphNeutral)
	}
}

// Row returns the row element of the named rule.
func (p *Panel) Row(name string) (dom.Element, bool) {
	r, ok := p.rows[name]
	return r.item, ok
}

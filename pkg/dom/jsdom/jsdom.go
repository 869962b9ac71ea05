//go:build js && wasm

// Package jsdom implements dom.Surface on top of the browser document.
package jsdom

import (
	"strings"
	"syscall/js"

	"github.com/dmitrymomot/passcheck/pkg/dom"
)

// Surface wraps a browser document.
type Surface struct {
	doc js.Value
	// funcs keeps callbacks alive for the lifetime of the page.
	funcs []js.Func
}

var _ dom.Surface = (*Surface)(nil)

// New wraps the global document.
func New() *Surface {
	return &Surface{doc: js.Global().Get("document")}
}

func (s *Surface) FindByID(id string) (dom.Element, bool) {
	v := s.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return nil, false
	}
	return &element{s: s, v: v}, true
}

func (s *Surface) CreateElement(tag string) dom.Element {
	return &element{s: s, v: s.doc.Call("createElement", tag)}
}

func (s *Surface) AppendChild(parent, child dom.Element) error {
	p, ok := parent.(*element)
	if !ok || p == nil {
		return dom.ErrForeignElement
	}
	c, ok := child.(*element)
	if !ok || c == nil {
		return dom.ErrForeignElement
	}
	if c.v.Call("contains", p.v).Bool() {
		return dom.ErrHierarchy
	}
	p.v.Call("appendChild", c.v)
	return nil
}

func (s *Surface) AddEventListener(target dom.Element, eventType string, fn dom.Listener) {
	t, ok := target.(*element)
	if !ok || t == nil || fn == nil {
		return
	}
	cb := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(&event{s: s, v: args[0]})
		}
		return nil
	})
	s.funcs = append(s.funcs, cb)
	t.v.Call("addEventListener", eventType, cb)
}

func (s *Surface) Head() dom.Element {
	return &element{s: s, v: s.doc.Get("head")}
}

type element struct {
	s *Surface
	v js.Value
}

func (e *element) wrap(v js.Value) dom.Element {
	if v.IsNull() || v.IsUndefined() {
		return nil
	}
	return &element{s: e.s, v: v}
}

func (e *element) ID() string      { return e.v.Get("id").String() }
func (e *element) TagName() string { return strings.ToLower(e.v.Get("tagName").String()) }

func (e *element) Attr(name string) (string, bool) {
	if !e.v.Call("hasAttribute", name).Bool() {
		return "", false
	}
	return e.v.Call("getAttribute", name).String(), true
}

func (e *element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }
func (e *element) RemoveAttr(name string)     { e.v.Call("removeAttribute", name) }

func (e *element) AddClass(names ...string) {
	for _, n := range names {
		if n != "" {
			e.v.Get("classList").Call("add", n)
		}
	}
}

func (e *element) RemoveClass(names ...string) {
	for _, n := range names {
		if n != "" {
			e.v.Get("classList").Call("remove", n)
		}
	}
}

func (e *element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *element) Text() string        { return e.v.Get("textContent").String() }
func (e *element) SetText(text string) { e.v.Set("textContent", text) }

func (e *element) Value() string {
	v := e.v.Get("value")
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func (e *element) Show()         { e.v.Get("style").Set("display", "") }
func (e *element) Hide()         { e.v.Get("style").Set("display", "none") }
func (e *element) Visible() bool { return e.v.Get("style").Get("display").String() != "none" }

func (e *element) Parent() dom.Element { return e.wrap(e.v.Get("parentElement")) }

func (e *element) Children() []dom.Element {
	list := e.v.Get("children")
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := range n {
		out = append(out, &element{s: e.s, v: list.Index(i)})
	}
	return out
}

func (e *element) QuerySelectorByAttr(attr, value string) dom.Element {
	css := js.Global().Get("CSS")
	sel := "[" + attr + `="` + css.Call("escape", value).String() + `"]`
	return e.wrap(e.v.Call("querySelector", sel))
}

func (e *element) Focus() { e.v.Call("focus") }

type event struct {
	s *Surface
	v js.Value
}

func (e *event) Type() string { return e.v.Get("type").String() }

func (e *event) Target() dom.Element {
	t := e.v.Get("target")
	if t.IsNull() || t.IsUndefined() {
		return nil
	}
	return &element{s: e.s, v: t}
}

func (e *event) PreventDefault()        { e.v.Call("preventDefault") }
func (e *event) DefaultPrevented() bool { return e.v.Get("defaultPrevented").Bool() }

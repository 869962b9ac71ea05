package dom

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is an in-memory Surface. Events are dispatched synchronously to
// the listeners of the target element only; there is no bubbling.
// A Document is not safe for concurrent use.
type Document struct {
	root      *html.Node
	elements  map[*html.Node]*element
	listeners map[*html.Node]map[string][]Listener
	active    *html.Node
}

var _ Surface = (*Document)(nil)

// New returns an empty document with html, head and body elements.
func New() *Document {
	doc, err := Parse(strings.NewReader(""))
	if err != nil {
		// html.Parse does not fail on an empty reader.
		panic(err)
	}
	return doc
}

// Parse builds a document from HTML markup.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{
		root:      root,
		elements:  make(map[*html.Node]*element),
		listeners: make(map[*html.Node]map[string][]Listener),
	}, nil
}

// FindByID implements Surface.
func (d *Document) FindByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	n := find(d.root, func(n *html.Node) bool {
		v, ok := attr(n, "id")
		return ok && v == id
	})
	if n == nil {
		return nil, false
	}
	return d.wrap(n), true
}

// CreateElement implements Surface.
func (d *Document) CreateElement(tag string) Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

// AppendChild implements Surface.
func (d *Document) AppendChild(parent, child Element) error {
	p, err := d.unwrap(parent)
	if err != nil {
		return err
	}
	c, err := d.unwrap(child)
	if err != nil {
		return err
	}
	for a := p; a != nil; a = a.Parent {
		if a == c {
			return ErrHierarchy
		}
	}
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.AppendChild(c)
	return nil
}

// AddEventListener implements Surface. Listeners on elements of another
// surface are ignored.
func (d *Document) AddEventListener(target Element, eventType string, fn Listener) {
	n, err := d.unwrap(target)
	if err != nil || fn == nil {
		return
	}
	byType, ok := d.listeners[n]
	if !ok {
		byType = make(map[string][]Listener)
		d.listeners[n] = byType
	}
	byType[eventType] = append(byType[eventType], fn)
}

// Head implements Surface.
func (d *Document) Head() Element {
	n := find(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Head })
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// Body returns the document body.
func (d *Document) Body() Element {
	n := find(d.root, func(n *html.Node) bool { return n.DataAtom == atom.Body })
	if n == nil {
		return nil
	}
	return d.wrap(n)
}

// Dispatch fires an event of the given type at target and returns it.
func (d *Document) Dispatch(target Element, eventType string) Event {
	ev := &event{typ: eventType, target: target}
	n, err := d.unwrap(target)
	if err != nil {
		return ev
	}
	// Copy so listeners added during dispatch wait for the next event.
	fns := append([]Listener(nil), d.listeners[n][eventType]...)
	for _, fn := range fns {
		fn(ev)
	}
	return ev
}

// SetValue replaces the value of a form control and fires an input event,
// the way typing or pasting does.
func (d *Document) SetValue(target Element, value string) Event {
	if target == nil {
		return &event{typ: EventInput}
	}
	target.SetAttr("value", value)
	return d.Dispatch(target, EventInput)
}

// Type appends text to the control value one rune at a time, firing an
// input event per rune.
func (d *Document) Type(target Element, text string) {
	if target == nil {
		return
	}
	for _, r := range text {
		d.SetValue(target, target.Value()+string(r))
	}
}

// Focus moves focus to target, firing a focus event if it was not focused.
func (d *Document) Focus(target Element) {
	n, err := d.unwrap(target)
	if err != nil || d.active == n {
		return
	}
	d.active = n
	d.Dispatch(target, EventFocus)
}

// Blur clears the focused element.
func (d *Document) Blur() {
	d.active = nil
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() Element {
	if d.active == nil {
		return nil
	}
	return d.wrap(d.active)
}

// Submit fires a submit event at form and reports whether the default
// submission would proceed.
func (d *Document) Submit(form Element) bool {
	return !d.Dispatch(form, EventSubmit).DefaultPrevented()
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRender, err)
	}
	return nil
}

// String returns the document as HTML.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// OuterHTML renders a single element and its subtree.
func (d *Document) OuterHTML(el Element) (string, error) {
	n, err := d.unwrap(el)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", errors.Join(ErrRender, err)
	}
	return buf.String(), nil
}

func (d *Document) wrap(n *html.Node) *element {
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &element{doc: d, n: n}
	d.elements[n] = el
	return el
}

func (d *Document) unwrap(el Element) (*html.Node, error) {
	if el == nil {
		return nil, ErrNilElement
	}
	e, ok := el.(*element)
	if !ok {
		return nil, ErrForeignElement
	}
	if e == nil {
		return nil, ErrNilElement
	}
	if e.doc != d {
		return nil, ErrForeignElement
	}
	return e.n, nil
}

// find walks the subtree below n depth first.
func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && match(c) {
			return c
		}
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

type event struct {
	typ       string
	target    Element
	prevented bool
}

func (e *event) Type() string           { return e.typ }
func (e *event) Target() Element        { return e.target }
func (e *event) PreventDefault()        { e.prevented = true }
func (e *event) DefaultPrevented() bool { return e.prevented }

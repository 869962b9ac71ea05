package dom

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

type element struct {
	doc *Document
	n   *html.Node
}

func (e *element) ID() string {
	v, _ := attr(e.n, "id")
	return v
}

func (e *element) TagName() string { return e.n.Data }

func (e *element) Attr(name string) (string, bool) { return attr(e.n, name) }

func (e *element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *element) RemoveAttr(name string) {
	e.n.Attr = slices.DeleteFunc(e.n.Attr, func(a html.Attribute) bool {
		return a.Namespace == "" && a.Key == name
	})
}

func (e *element) classes() []string {
	v, _ := attr(e.n, "class")
	return strings.Fields(v)
}

func (e *element) setClasses(list []string) {
	if len(list) == 0 {
		e.RemoveAttr("class")
		return
	}
	e.SetAttr("class", strings.Join(list, " "))
}

func (e *element) AddClass(names ...string) {
	list := e.classes()
	for _, name := range names {
		if name != "" && !slices.Contains(list, name) {
			list = append(list, name)
		}
	}
	e.setClasses(list)
}

func (e *element) RemoveClass(names ...string) {
	list := slices.DeleteFunc(e.classes(), func(c string) bool {
		return slices.Contains(names, c)
	})
	e.setClasses(list)
}

func (e *element) HasClass(name string) bool {
	return slices.Contains(e.classes(), name)
}

func (e *element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.n)
	return b.String()
}

func (e *element) SetText(text string) {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
	if text != "" {
		e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

func (e *element) Value() string {
	v, _ := attr(e.n, "value")
	return v
}

func (e *element) Show() { e.setDisplay("") }
func (e *element) Hide() { e.setDisplay("none") }

func (e *element) Visible() bool {
	v, _ := attr(e.n, "style")
	display, _ := styleProperty(v, "display")
	return display != "none"
}

func (e *element) setDisplay(value string) {
	v, _ := attr(e.n, "style")
	style := setStyleProperty(v, "display", value)
	if style == "" {
		e.RemoveAttr("style")
		return
	}
	e.SetAttr("style", style)
}

func (e *element) Parent() Element {
	if e.n.Parent == nil || e.n.Parent.Type != html.ElementNode {
		return nil
	}
	return e.doc.wrap(e.n.Parent)
}

func (e *element) Children() []Element {
	var out []Element
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, e.doc.wrap(c))
		}
	}
	return out
}

func (e *element) QuerySelectorByAttr(name, value string) Element {
	n := find(e.n, func(n *html.Node) bool {
		v, ok := attr(n, name)
		return ok && v == value
	})
	if n == nil {
		return nil
	}
	return e.doc.wrap(n)
}

func (e *element) Focus() { e.doc.Focus(e) }

// styleProperty reads one property from an inline style declaration.
func styleProperty(style, name string) (string, bool) {
	for _, decl := range strings.Split(style, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if ok && strings.EqualFold(strings.TrimSpace(k), name) {
			return strings.TrimSpace(v), true
		}
	}
	return "", false
}

// setStyleProperty sets or, for an empty value, removes a property.
func setStyleProperty(style, name, value string) string {
	var decls []string
	for _, decl := range strings.Split(style, ";") {
		k, _, ok := strings.Cut(decl, ":")
		if !ok || strings.EqualFold(strings.TrimSpace(k), name) {
			continue
		}
		decls = append(decls, strings.TrimSpace(decl))
	}
	if value != "" {
		decls = append(decls, name+": "+value)
	}
	return strings.Join(decls, "; ")
}

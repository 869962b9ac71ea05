package dom

// Event types used by the password field.
const (
	EventFocus  = "focus"
	EventInput  = "input"
	EventSubmit = "submit"
)

// Surface is the rendering capability injected into renderers and binders.
type Surface interface {
	// FindByID returns the element with the given id attribute.
	FindByID(id string) (Element, bool)
	// CreateElement returns a detached element.
	CreateElement(tag string) Element
	// AppendChild moves child to the end of parent's children.
	AppendChild(parent, child Element) error
	// AddEventListener subscribes fn to events of the given type on target.
	AddEventListener(target Element, eventType string, fn Listener)
	// Head returns the document head, where shared assets go.
	Head() Element
}

// Element is a node of the rendered tree.
type Element interface {
	ID() string
	TagName() string

	Attr(name string) (string, bool)
	SetAttr(name, value string)
	RemoveAttr(name string)

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	Text() string
	SetText(text string)
	// Value returns the current value of a form control.
	Value() string

	Show()
	Hide()
	Visible() bool

	Parent() Element
	Children() []Element
	// QuerySelectorByAttr returns the first descendant whose attribute
	// equals value, or nil.
	QuerySelectorByAttr(attr, value string) Element

	// Focus moves input focus to the element.
	Focus()
}

// Event is a dispatched UI event.
type Event interface {
	Type() string
	Target() Element
	PreventDefault()
	DefaultPrevented() bool
}

// Listener handles a dispatched event.
type Listener func(Event)

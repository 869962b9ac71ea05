package formbind

// Visibility of the feedback panel.
type Visibility int

const (
	Hidden Visibility = iota
	Visible
)

func (v Visibility) String() string {
	if v == Visible {
		return "visible"
	}
	return "hidden"
}

// Validity styling of the input.
type Validity int

const (
	Neutral Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "neutral"
}

// State is the observable state of a binding.
type State struct {
	Visibility Visibility
	Validity   Validity
}

// CSS classes toggled on the input.
const (
	ClassValid   = "is-valid"
	ClassInvalid = "is-invalid"
)

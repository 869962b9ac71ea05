package feedback

import (
	_ "embed"

	"github.com/dmitrymomot/passcheck/pkg/dom"
)

// StylesheetID marks the injected style element.
const StylesheetID = "password-feedback-style"

// CSS is the static stylesheet for the neutral, passed and failed row states.
//
//go:embed feedback.css
var CSS string

// EnsureStylesheet adds the stylesheet to the document head unless it is
// already there. It reports whether a style element was inserted.
func EnsureStylesheet(s dom.Surface) (bool, error) {
	if s == nil {
		return false, ErrNilSurface
	}
	if _, ok := s.FindByID(StylesheetID); ok {
		return false, nil
	}
	head := s.Head()
	if head == nil {
		return false, ErrNoParent
	}
	style := s.CreateElement("style")
	style.SetAttr("id", StylesheetID)
	style.SetText(CSS)
	if err := s.AppendChild(head, style); err != nil {
		return false, err
	}
	return true, nil
}

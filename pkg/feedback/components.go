package feedback

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/passcheck/pkg/dom"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

// PanelParams configures the server-rendered panel.
type PanelParams struct {
	// ID of the panel element, usually PanelID(inputID).
	ID       string
	Messages password.Messages
	// Result marks rows passed or failed; nil renders neutral rows.
	Result  *password.Result
	Visible bool
}

// PanelView renders the checklist built by Create on a scratch document,
// so both renderers emit the same markup.
func PanelView(p PanelParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		doc := dom.New()
		anchor := doc.CreateElement("input")
		// Create names the panel after its input; the id is replaced below.
		anchor.SetAttr("id", "panel")
		if err := doc.AppendChild(doc.Body(), anchor); err != nil {
			return err
		}
		panel, err := Create(doc, anchor, p.Messages)
		if err != nil {
			return err
		}

		root := panel.Element()
		if p.ID != "" {
			root.SetAttr("id", p.ID)
		} else {
			root.RemoveAttr("id")
		}
		if p.Result != nil {
			panel.Update(*p.Result)
		}
		if p.Visible {
			panel.Show()
		}

		markup, err := doc.OuterHTML(root)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, markup)
		return err
	})
}

// Stylesheet renders the panel stylesheet as a style element.
func Stylesheet() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style id="`+StylesheetID+`">`+CSS+`</style>`)
		return err
	})
}

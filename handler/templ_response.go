package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures a datastar element patch.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector of the patched element.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the element is merged into the page.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

type templResponse struct {
	component templ.Component
	signals   any
	options   []TemplOption
}

func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		if err := sse.PatchElementTempl(t.component, t.options...); err != nil {
			return err
		}
		if t.signals != nil {
			return sse.MarshalAndPatchSignals(t.signals)
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return t.component.Render(r.Context(), w)
}

// Templ renders component as an element patch for datastar requests and as
// an HTML document or fragment otherwise.
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{component: component, options: opts}
}

// TemplWithSignals is Templ followed by a signals patch on datastar
// requests. Plain requests only get the HTML.
func TemplWithSignals(component templ.Component, signals any, opts ...TemplOption) Response {
	return templResponse{component: component, signals: signals, options: opts}
}

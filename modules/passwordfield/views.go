package passwordfield

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/formbind"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

// Views holds the components rendered by the service.
type Views struct {
	Panel    func(feedback.PanelParams) templ.Component
	DemoPage func(DemoPageParams) templ.Component
}

func DefaultViews() Views {
	return Views{
		Panel:    feedback.PanelView,
		DemoPage: DemoPage,
	}
}

// DemoPageParams contains data for rendering the demo page.
type DemoPageParams struct {
	Lang        string
	Dir         string
	BasePath    string
	InputID     string
	FormID      string
	Optional    bool
	Label       string
	Submit      string
	Messages    password.Messages
	DatastarURL string
	// Notice is shown above the form after a native submission.
	Notice        string
	NoticeIsError bool
}

// DemoPage renders a form with one datastar-bound password field and its
// hidden checklist. Every endpoint carries the page language so patches
// stay in the language the page was rendered in.
func DemoPage(p DemoPageParams) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		esc := templ.EscapeString[string]
		endpoint := func(event string) string {
			q := url.Values{"event": {event}, "lang": {p.Lang}}
			return fmt.Sprintf("@post('%s/feedback?%s')", p.BasePath, q.Encode())
		}
		action := p.BasePath + "/demo?" + url.Values{"lang": {p.Lang}}.Encode()

		var b strings.Builder
		fmt.Fprintf(&b, `<!DOCTYPE html><html lang="%s" dir="%s"><head><meta charset="utf-8">`, esc(p.Lang), esc(p.Dir))
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		fmt.Fprintf(&b, `<title>%s</title>`, esc(p.Label))
		fmt.Fprintf(&b, `<link rel="stylesheet" href="%s/style.css">`, esc(p.BasePath))
		if p.DatastarURL != "" {
			fmt.Fprintf(&b, `<script type="module" src="%s"></script>`, esc(p.DatastarURL))
		}
		b.WriteString(`</head><body>`)

		if p.Notice != "" {
			if p.NoticeIsError {
				fmt.Fprintf(&b, `<p class="%s" role="alert">%s</p>`, formbind.ClassError, esc(p.Notice))
			} else {
				fmt.Fprintf(&b, `<p class="form-status" role="status">%s</p>`, esc(p.Notice))
			}
		}

		signals := fmt.Sprintf("{password: '', optional: %t, %s: '%s', %s: '', %s: false}",
			p.Optional, SignalValidity, formbind.Neutral, SignalError, SignalAccepted)
		// Submission goes through only once the server accepted the password;
		// until then it is cancelled and checked. The effect resubmits when
		// acceptance arrives.
		onSubmit := fmt.Sprintf("$%s || (evt.preventDefault(), %s)", SignalAccepted, endpoint(EventSubmit))
		effect := fmt.Sprintf("$%s && el.requestSubmit()", SignalAccepted)
		fmt.Fprintf(&b, `<form id="%s" method="post" action="%s" data-signals="%s" data-on:submit="%s" data-effect="%s">`,
			esc(p.FormID), esc(action), esc(signals), esc(onSubmit), esc(effect))

		b.WriteString(`<div class="form-group">`)
		fmt.Fprintf(&b, `<label for="%s">%s</label>`, esc(p.InputID), esc(p.Label))

		classes := fmt.Sprintf("{'%s': $%s == '%s', '%s': $%s == '%s'}",
			formbind.ClassValid, SignalValidity, formbind.Valid,
			formbind.ClassInvalid, SignalValidity, formbind.Invalid)
		fmt.Fprintf(&b, `<input type="password" id="%s" name="password" autocomplete="new-password" data-bind="password" data-class="%s" data-on:focus="%s" data-on:input__debounce.150ms="%s">`,
			esc(p.InputID), esc(classes), esc(endpoint(EventFocus)), esc(endpoint(EventInput)))
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		panel := feedback.PanelView(feedback.PanelParams{
			ID:       feedback.PanelID(p.InputID),
			Messages: p.Messages,
		})
		if err := panel.Render(ctx, w); err != nil {
			return err
		}

		b.Reset()
		fmt.Fprintf(&b, `<div class="%s" id="%s-error" role="alert" data-show="$%s != ''" data-text="$%s"></div>`,
			formbind.ClassError, esc(p.InputID), SignalError, SignalError)
		fmt.Fprintf(&b, `</div><button type="submit">%s</button></form></body></html>`, esc(p.Submit))
		_, err := io.WriteString(w, b.String())
		return err
	})
}

var rtlLanguages = map[string]bool{"ar": true, "fa": true, "he": true, "ur": true}

func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	base, _ := tag.Base()
	return base.String()
}

// direction returns the text direction of lang.
func direction(lang string) string {
	if rtlLanguages[baseLanguage(lang)] {
		return "rtl"
	}
	return "ltr"
}

// Package dom describes the small slice of a document object model the
// password field needs, so that feedback rendering and form binding can run
// against a browser or against an in-memory tree in tests.
//
// Surface is the injected capability: element lookup, element creation,
// tree insertion and event subscription. Document is the in-memory
// implementation backed by golang.org/x/net/html; it can be parsed from
// markup, driven with Dispatch, SetValue, Focus and Submit, and rendered
// back to HTML. Package jsdom provides the syscall/js implementation for
// GOOS=js builds.
//
//	doc, err := dom.Parse(strings.NewReader(`<form id="f"><input id="pw"></form>`))
//	input, _ := doc.FindByID("pw")
//	doc.AddEventListener(input, dom.EventInput, func(e dom.Event) { ... })
//	doc.SetValue(input, "Abc123!!")
package dom

// Package formbind attaches password validation to a form field on a
// dom.Surface.
//
// Bind resolves the input and, when present, its form, creates the feedback
// panel next to the input and installs three listeners:
//
//   - focus shows the panel, except for an optional field that is still empty;
//   - input re-validates on every change, updates the checklist and toggles
//     the is-valid / is-invalid classes on the input;
//   - submit blocks the form while the password fails any rule, focuses the
//     input and reports the problem through a Notifier.
//
// An optional field accepts an empty value: the panel hides, validity
// classes are cleared and submission proceeds.
//
// Panel visibility is a small state machine (see pkg/statemachine) fed by
// the same three events.
//
// Each Binding owns its panel and notifier; bindings on the same page do not
// share state.
//
//	b, err := formbind.Bind(surface, "password", "signup-form",
//		formbind.WithOptional(false),
//		formbind.WithLogger(logger),
//	)
package formbind

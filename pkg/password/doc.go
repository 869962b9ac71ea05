// Package password implements the password composition policy behind the
// checklist UI: six named rules evaluated independently against a candidate
// password.
//
// The rules, in evaluation order:
//
//   - minLength: at least 8 characters
//   - uppercase: at least one A-Z
//   - lowercase: at least one a-z
//   - digit:     at least one 0-9
//   - special:   at least one of ! @ # $ % ^ & * ( ) _ + - = [ ] { } | ; : , . < > ?
//   - noSpaces:  no leading or trailing whitespace
//
// Validate never short-circuits, so callers always get the status of every rule.
// The overall Valid flag is the logical AND of all of them.
//
// # Usage
//
//	res := password.Validate(input)
//	for _, r := range res.Rules {
//		fmt.Println(r.Name, r.Passed, r.Message)
//	}
//
// Engines bound to another string table come from New:
//
//	engine := password.New(password.WithMessages(password.EnglishMessages()))
//
// # Alternatives
//
// MatchesPattern is a single-expression check for contexts that need a boolean
// only. Check and CheckOptional return the first failing rule as
// validator.ValidationErrors, and RegisterValidation plugs the policy into
// go-playground/validator struct tags. None of them is used to render feedback.
package password

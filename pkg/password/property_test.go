package password_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/dmitrymomot/passcheck/pkg/password"
)

// independent re-statement of the six predicates
func satisfiesAll(s string) bool {
	if utf8.RuneCountInString(s) < password.MinLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(password.SpecialChars, r):
			special = true
		}
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	edges := !unicode.IsSpace(first) && !unicode.IsSpace(last)
	return upper && lower && digit && special && edges
}

func TestValidateProperties(t *testing.T) {
	t.Parallel()

	properties := gopter.NewProperties(nil)

	properties.Property("valid iff every predicate holds", prop.ForAll(
		func(s string) bool {
			return password.Validate(s).Valid == satisfiesAll(s)
		},
		gen.OneGenOf(
			gen.AnyString(),
			gen.RegexMatch(`^[ A-Za-z0-9!@#$%^&*()_+=<>?~-]{0,16}$`),
		),
	))

	properties.Property("validate is pure", prop.ForAll(
		func(s string) bool {
			a, b := password.Validate(s), password.Validate(s)
			if a.Valid != b.Valid || len(a.Rules) != len(b.Rules) {
				return false
			}
			for i := range a.Rules {
				if a.Rules[i] != b.Rules[i] {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.Property("pattern match implies valid", prop.ForAll(
		func(s string) bool {
			return !password.MatchesPattern(s) || password.Validate(s).Valid
		},
		gen.RegexMatch(`^[A-Za-z0-9!@#$%^&*()_+=<>?]{6,14}$`),
	))

	properties.TestingRun(t)
}

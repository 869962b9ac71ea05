package password

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Rule names. They double as the data-rule marker in rendered feedback.
const (
	RuleMinLength = "minLength"
	RuleUppercase = "uppercase"
	RuleLowercase = "lowercase"
	RuleDigit     = "digit"
	RuleSpecial   = "special"
	RuleNoSpaces  = "noSpaces"
)

// MinLength is the minimum number of characters a password must have.
const MinLength = 8

// SpecialChars lists every character accepted by the special rule.
const SpecialChars = `!@#$%^&*()_+-=[]{}|;:,.<>?`

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{}|;:,.<>?]`)
)

// Rule is a named predicate over a password string.
type Rule struct {
	Name       string
	MessageKey string
	Check      func(string) bool
}

// defaultRules is the fixed evaluation order. Never mutate it; Rules returns a copy.
var defaultRules = []Rule{
	{Name: RuleMinLength, MessageKey: "password.rules.min_length", Check: hasMinLength},
	{Name: RuleUppercase, MessageKey: "password.rules.uppercase", Check: uppercaseRegex.MatchString},
	{Name: RuleLowercase, MessageKey: "password.rules.lowercase", Check: lowercaseRegex.MatchString},
	{Name: RuleDigit, MessageKey: "password.rules.digit", Check: digitRegex.MatchString},
	{Name: RuleSpecial, MessageKey: "password.rules.special", Check: specialCharRegex.MatchString},
	{Name: RuleNoSpaces, MessageKey: "password.rules.no_spaces", Check: hasNoEdgeSpaces},
}

// Rules returns the ordered rule set.
func Rules() []Rule {
	out := make([]Rule, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// RuleNames returns rule names in evaluation order.
func RuleNames() []string {
	names := make([]string, len(defaultRules))
	for i, r := range defaultRules {
		names[i] = r.Name
	}
	return names
}

func hasMinLength(s string) bool {
	return utf8.RuneCountInString(s) >= MinLength
}

// hasNoEdgeSpaces passes for the empty string: there is no edge to violate.
// minLength already rejects it, so overall validity is unaffected.
func hasNoEdgeSpaces(s string) bool {
	if s == "" {
		return true
	}
	first, _ := utf8.DecodeRuneInString(s)
	last, _ := utf8.DecodeLastRuneInString(s)
	return !unicode.IsSpace(first) && !unicode.IsSpace(last)
}

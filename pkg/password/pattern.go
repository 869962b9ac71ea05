package password

import (
	"time"

	"github.com/dlclark/regexp2"
)

// Pattern is the single-expression form of the policy: lowercase, uppercase,
// digit and special character present, at least MinLength characters, and only
// characters from the allowed superset. RE2 has no lookahead, hence regexp2.
const Pattern = `^(?=.*[a-z])(?=.*[A-Z])(?=.*\d)(?=.*[!@#$%^&*()_+\-=\[\]{}|;:,.<>?])[A-Za-z\d!@#$%^&*()_+\-=\[\]{}|;:,.<>?]{8,}$`

var patternRegex = func() *regexp2.Regexp {
	re := regexp2.MustCompile(Pattern, regexp2.ECMAScript)
	re.MatchTimeout = 100 * time.Millisecond
	return re
}()

// MatchesPattern reports whether password satisfies Pattern.
// It is stricter than Validate: whitespace and characters outside the allowed
// superset anywhere in the password fail. Feedback rendering never uses it.
func MatchesPattern(password string) bool {
	ok, err := patternRegex.MatchString(password)
	return err == nil && ok
}

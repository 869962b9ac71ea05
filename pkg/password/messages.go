package password

// Translation keys for the string table.
const (
	KeyInstructions  = "password.instructions"
	KeyRequired      = "password.rules.required"
	KeySubmitBlocked = "password.submit_blocked"
)

// Messages is the user-facing string table.
type Messages struct {
	Instructions  string
	Required      string
	MinLength     string
	Uppercase     string
	Lowercase     string
	Digit         string
	Special       string
	NoSpaces      string
	SubmitBlocked string
}

// DefaultMessages returns the Persian string table the checklist ships with.
func DefaultMessages() Messages {
	return Messages{
		Instructions:  "رمز عبور باید شامل موارد زیر باشد:",
		Required:      "رمز عبور الزامی است",
		MinLength:     "حداقل ۸ کاراکتر",
		Uppercase:     "حداقل یک حرف بزرگ (A-Z)",
		Lowercase:     "حداقل یک حرف کوچک (a-z)",
		Digit:         "حداقل یک عدد (0-9)",
		Special:       "حداقل یک کاراکتر خاص (!@#$%^&*...)",
		NoSpaces:      "بدون فاصله در ابتدا و انتها",
		SubmitBlocked: "رمز عبور معتبر نیست. لطفاً تمام شرایط را رعایت کنید.",
	}
}

// EnglishMessages returns an English string table.
func EnglishMessages() Messages {
	return Messages{
		Instructions:  "Password must contain:",
		Required:      "Password is required",
		MinLength:     "At least 8 characters",
		Uppercase:     "At least one uppercase letter (A-Z)",
		Lowercase:     "At least one lowercase letter (a-z)",
		Digit:         "At least one digit (0-9)",
		Special:       "At least one special character (!@#$%^&*...)",
		NoSpaces:      "No spaces at the beginning or end",
		SubmitBlocked: "Password is not valid. Please meet all requirements.",
	}
}

// For returns the message of the named rule, or "" for unknown names.
func (m Messages) For(rule string) string {
	switch rule {
	case RuleMinLength:
		return m.MinLength
	case RuleUppercase:
		return m.Uppercase
	case RuleLowercase:
		return m.Lowercase
	case RuleDigit:
		return m.Digit
	case RuleSpecial:
		return m.Special
	case RuleNoSpaces:
		return m.NoSpaces
	}
	return ""
}

// Translator is the subset of i18n.Translator used to build a string table.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// MessagesFromTranslator resolves the string table for lang.
// Missing keys fall back to fallback.
func MessagesFromTranslator(t Translator, lang string, fallback Messages) Messages {
	if t == nil {
		return fallback
	}
	return Messages{
		Instructions:  t.Td(lang, KeyInstructions, fallback.Instructions),
		Required:      t.Td(lang, KeyRequired, fallback.Required),
		MinLength:     t.Td(lang, "password.rules.min_length", fallback.MinLength),
		Uppercase:     t.Td(lang, "password.rules.uppercase", fallback.Uppercase),
		Lowercase:     t.Td(lang, "password.rules.lowercase", fallback.Lowercase),
		Digit:         t.Td(lang, "password.rules.digit", fallback.Digit),
		Special:       t.Td(lang, "password.rules.special", fallback.Special),
		NoSpaces:      t.Td(lang, "password.rules.no_spaces", fallback.NoSpaces),
		SubmitBlocked: t.Td(lang, KeySubmitBlocked, fallback.SubmitBlocked),
	}
}

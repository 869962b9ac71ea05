package password

import "github.com/dmitrymomot/passcheck/pkg/validator"

// ValidatorRules exposes the rule set as validator rules for field.
// Feed them to validator.Apply to collect every failure at once.
func (e *Engine) ValidatorRules(field, password string) []validator.Rule {
	rules := make([]validator.Rule, 0, len(e.rules))
	for _, r := range e.rules {
		rules = append(rules, e.validatorRule(r, field, password))
	}
	return rules
}

// Check returns the first failing rule as validation errors, nil when the
// password is acceptable. Empty input fails as required.
// Order: required, noSpaces, minLength, uppercase, lowercase, digit, special.
func (e *Engine) Check(field, password string) error {
	rules := []validator.Rule{{
		Check: func() bool { return password != "" },
		Error: validator.ValidationError{
			Field:             field,
			Rule:              validator.RuleRequired,
			Message:           e.messages.Required,
			TranslationKey:    KeyRequired,
			TranslationValues: map[string]any{"field": field},
		},
	}}
	for _, name := range []string{RuleNoSpaces, RuleMinLength, RuleUppercase, RuleLowercase, RuleDigit, RuleSpecial} {
		if r, ok := e.rule(name); ok {
			rules = append(rules, e.validatorRule(r, field, password))
		}
	}
	return validator.First(rules...)
}

// CheckOptional is Check for fields that may be left empty.
func (e *Engine) CheckOptional(field, password string) error {
	if password == "" {
		return nil
	}
	return e.Check(field, password)
}

func (e *Engine) rule(name string) (Rule, bool) {
	for _, r := range e.rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

func (e *Engine) validatorRule(r Rule, field, password string) validator.Rule {
	return validator.Rule{
		Check: func() bool { return r.Check(password) },
		Error: validator.ValidationError{
			Field:          field,
			Rule:           r.Name,
			Message:        e.messages.For(r.Name),
			TranslationKey: r.MessageKey,
			TranslationValues: map[string]any{
				"field":      field,
				"min_length": MinLength,
				"special":    SpecialChars,
			},
		},
	}
}

// ValidatorRules is Engine.ValidatorRules on the default engine.
func ValidatorRules(field, password string) []validator.Rule {
	return defaultEngine.ValidatorRules(field, password)
}

// Check is Engine.Check on the default engine.
func Check(field, password string) error {
	return defaultEngine.Check(field, password)
}

// CheckOptional is Engine.CheckOptional on the default engine.
func CheckOptional(field, password string) error {
	return defaultEngine.CheckOptional(field, password)
}

package password_test

import (
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passcheck/pkg/password"
	"github.com/dmitrymomot/passcheck/pkg/validator"
)

func TestCheck_FirstFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		rule  string
	}{
		{"empty", "", "required"},
		{"surrounding whitespace wins over length", " a ", password.RuleNoSpaces},
		{"too short", "Ab1!", password.RuleMinLength},
		{"no uppercase", "abcdefg1!", password.RuleUppercase},
		{"no lowercase", "ABCDEFG1!", password.RuleLowercase},
		{"no digit", "Abcdefgh!", password.RuleDigit},
		{"no special", "Abcdefg12", password.RuleSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := password.Check("password", tt.input)
			require.Error(t, err)

			verrs := validator.ExtractValidationErrors(err)
			require.Len(t, verrs, 1)
			assert.Equal(t, tt.rule, verrs[0].Rule)
			assert.Equal(t, "password", verrs[0].Field)
			assert.NotEmpty(t, verrs[0].TranslationKey)
		})
	}

	assert.NoError(t, password.Check("password", "Abc123!!"))
}

func TestCheckOptional(t *testing.T) {
	t.Parallel()

	assert.NoError(t, password.CheckOptional("new_password", ""))
	assert.NoError(t, password.CheckOptional("new_password", "Abc123!!"))

	err := password.CheckOptional("new_password", "abc")
	require.Error(t, err)
	assert.True(t, validator.ExtractValidationErrors(err).Has("new_password"))
}

func TestValidatorRules(t *testing.T) {
	t.Parallel()

	rules := password.ValidatorRules("password", "abc")
	require.Len(t, rules, 6)

	err := validator.Apply(rules...)
	verrs := validator.ExtractValidationErrors(err)
	require.NotNil(t, verrs)

	assert.True(t, verrs.HasRule(password.RuleMinLength))
	assert.True(t, verrs.HasRule(password.RuleUppercase))
	assert.True(t, verrs.HasRule(password.RuleDigit))
	assert.True(t, verrs.HasRule(password.RuleSpecial))
	assert.False(t, verrs.HasRule(password.RuleLowercase))
	assert.False(t, verrs.HasRule(password.RuleNoSpaces))

	assert.NoError(t, validator.Apply(password.ValidatorRules("password", "Abc123!!")...))
}

func TestMatchesPattern(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"Abc123!!", true},
		{"Zz9[]{}<>", true},
		{"abc123!!", false},
		{"ABC123!!", false},
		{"Abcdef!!", false},
		{"Abcdef12", false},
		{"Abc12!", false},
		{"Abc 123!!", false},
		{"Abc123!!~", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, password.MatchesPattern(tt.input), "input %q", tt.input)
	}
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	type changePassword struct {
		New      string `validate:"password"`
		Optional string `validate:"password_optional"`
	}

	v := playground.New()
	require.NoError(t, password.RegisterValidation(v))

	assert.NoError(t, v.Struct(changePassword{New: "Abc123!!"}))
	assert.NoError(t, v.Struct(changePassword{New: "Abc123!!", Optional: "Xyz789$$"}))
	assert.Error(t, v.Struct(changePassword{New: ""}))
	assert.Error(t, v.Struct(changePassword{New: "weak"}))
	assert.Error(t, v.Struct(changePassword{New: "Abc123!!", Optional: "weak"}))
}

type mapTranslator map[string]string

func (m mapTranslator) Td(_, key, def string, _ ...string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

func TestMessagesFromTranslator(t *testing.T) {
	t.Parallel()

	tr := mapTranslator{
		"password.rules.min_length": "8+ chars",
		"password.submit_blocked":   "nope",
	}
	fallback := password.EnglishMessages()

	msgs := password.MessagesFromTranslator(tr, "en", fallback)
	assert.Equal(t, "8+ chars", msgs.MinLength)
	assert.Equal(t, "nope", msgs.SubmitBlocked)
	assert.Equal(t, fallback.Uppercase, msgs.Uppercase)

	assert.Equal(t, fallback, password.MessagesFromTranslator(nil, "en", fallback))
	assert.Equal(t, "8+ chars", msgs.For(password.RuleMinLength))
	assert.Empty(t, msgs.For("unknown"))
}

func TestCheck_EmptyIsRequired(t *testing.T) {
	t.Parallel()

	err := password.Check("password", "")
	assert.ErrorIs(t, err, validator.ErrFieldRequired)

	err = password.Check("password", "abc")
	require.Error(t, err)
	assert.NotErrorIs(t, err, validator.ErrFieldRequired)

	assert.NoError(t, password.CheckOptional("password", ""))
}

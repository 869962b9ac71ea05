package formbind_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passcheck/pkg/dom"
	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/formbind"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

const page = `<!DOCTYPE html><html><head></head><body>
<form id="signup">
  <div class="field"><input id="pw" type="password"></div>
  <div class="field"><input id="pw2" type="password"></div>
</form>
<form id="profile"><div class="field"><input id="new-pw" type="password"></div></form>
<div class="field"><input id="loose" type="password"></div>
</body></html>`

func newDoc(t *testing.T) *dom.Document {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func mustFind(t *testing.T, doc *dom.Document, id string) dom.Element {
	t.Helper()
	el, ok := doc.FindByID(id)
	require.True(t, ok, id)
	return el
}

type recorder struct {
	messages []string
	clears   int
}

func (r *recorder) Notify(msg string) { r.messages = append(r.messages, msg) }
func (r *recorder) Clear()            { r.clears++ }

func TestBind(t *testing.T) {
	t.Parallel()

	t.Run("missing input", func(t *testing.T) {
		t.Parallel()
		doc := newDoc(t)
		_, err := formbind.Bind(doc, "nope", "signup")
		assert.ErrorIs(t, err, formbind.ErrInputNotFound)
		assert.False(t, formbind.Setup(doc, "nope", "signup", false))
		_, ok := doc.FindByID(feedback.StylesheetID)
		assert.False(t, ok)
	})

	t.Run("nil surface", func(t *testing.T) {
		t.Parallel()
		_, err := formbind.Bind(nil, "pw", "signup")
		assert.ErrorIs(t, err, formbind.ErrNilSurface)
	})

	t.Run("initial state", func(t *testing.T) {
		t.Parallel()
		doc := newDoc(t)
		b, err := formbind.Bind(doc, "pw", "signup")
		require.NoError(t, err)

		assert.Equal(t, formbind.State{Visibility: formbind.Hidden, Validity: formbind.Neutral}, b.State())
		assert.False(t, b.Panel().Visible())
		assert.Same(t, mustFind(t, doc, "signup"), b.Form())
		assert.Same(t, b.Input().Parent(), b.Panel().Element().Parent())

		errRegion, ok := doc.FindByID("pw-error")
		require.True(t, ok)
		assert.False(t, errRegion.Visible())
		role, _ := errRegion.Attr("role")
		assert.Equal(t, "alert", role)
	})

	t.Run("stylesheet left to startup", func(t *testing.T) {
		t.Parallel()
		doc := newDoc(t)
		inserted, err := feedback.EnsureStylesheet(doc)
		require.NoError(t, err)
		assert.True(t, inserted)
		assert.True(t, formbind.Setup(doc, "pw", "signup", false))
		assert.True(t, formbind.Setup(doc, "pw2", "signup", false))
		assert.Equal(t, 1, strings.Count(doc.String(), `id="`+feedback.StylesheetID+`"`))
	})

	t.Run("without form", func(t *testing.T) {
		t.Parallel()
		doc := newDoc(t)
		b, err := formbind.Bind(doc, "loose", "missing-form")
		require.NoError(t, err)
		assert.Nil(t, b.Form())

		input := b.Input()
		doc.SetValue(input, "abc")
		assert.True(t, input.HasClass(formbind.ClassInvalid))
		assert.True(t, b.Panel().Visible())
	})
}

func TestMandatoryField(t *testing.T) {
	t.Parallel()
	doc := newDoc(t)
	rec := &recorder{}
	b, err := formbind.Bind(doc, "pw", "signup", formbind.WithNotifier(rec))
	require.NoError(t, err)
	input := mustFind(t, doc, "pw")
	form := mustFind(t, doc, "signup")

	doc.Focus(input)
	assert.Equal(t, formbind.Visible, b.State().Visibility)
	assert.True(t, b.Panel().Visible())

	doc.SetValue(input, "abc123!!")
	assert.Equal(t, formbind.State{Visibility: formbind.Visible, Validity: formbind.Invalid}, b.State())
	assert.True(t, input.HasClass(formbind.ClassInvalid))
	assert.False(t, input.HasClass(formbind.ClassValid))
	row, _ := b.Panel().Row(password.RuleUppercase)
	assert.True(t, row.HasClass(feedback.ClassFailed))

	t.Run("invalid submit is blocked", func(t *testing.T) {
		doc.Blur()
		b.Panel().Hide()
		assert.False(t, doc.Submit(form))
		assert.True(t, input.HasClass(formbind.ClassInvalid))
		assert.True(t, b.Panel().Visible())
		assert.Same(t, input, doc.ActiveElement())
		assert.Equal(t, []string{password.DefaultMessages().SubmitBlocked}, rec.messages)
	})

	t.Run("valid input", func(t *testing.T) {
		doc.SetValue(input, "Abc123!!")
		assert.Equal(t, formbind.State{Visibility: formbind.Visible, Validity: formbind.Valid}, b.State())
		assert.True(t, input.HasClass(formbind.ClassValid))
		assert.False(t, input.HasClass(formbind.ClassInvalid))
		for _, name := range password.RuleNames() {
			row, _ := b.Panel().Row(name)
			assert.True(t, row.HasClass(feedback.ClassPassed), name)
		}
		assert.Positive(t, rec.clears)
	})

	t.Run("valid submit proceeds", func(t *testing.T) {
		assert.True(t, doc.Submit(form))
		assert.Len(t, rec.messages, 1)
	})

	t.Run("empty mandatory field is invalid", func(t *testing.T) {
		doc.SetValue(input, "")
		assert.Equal(t, formbind.Invalid, b.State().Validity)
		assert.True(t, b.Panel().Visible())
		assert.False(t, doc.Submit(form))
		row, _ := b.Panel().Row(password.RuleNoSpaces)
		assert.True(t, row.HasClass(feedback.ClassPassed))
	})
}

func TestOptionalField(t *testing.T) {
	t.Parallel()
	doc := newDoc(t)
	b, err := formbind.Bind(doc, "new-pw", "profile", formbind.WithOptional(true))
	require.NoError(t, err)
	input := mustFind(t, doc, "new-pw")
	form := mustFind(t, doc, "profile")

	doc.Focus(input)
	assert.False(t, b.Panel().Visible())
	assert.Equal(t, formbind.Hidden, b.State().Visibility)

	assert.True(t, doc.Submit(form))
	assert.False(t, input.HasClass(formbind.ClassInvalid))

	doc.SetValue(input, "short")
	assert.True(t, b.Panel().Visible())
	assert.True(t, input.HasClass(formbind.ClassInvalid))
	assert.False(t, doc.Submit(form))

	errRegion, ok := doc.FindByID("new-pw-error")
	require.True(t, ok)
	assert.True(t, errRegion.Visible())
	assert.Equal(t, password.DefaultMessages().SubmitBlocked, errRegion.Text())

	doc.SetValue(input, "")
	assert.Equal(t, formbind.State{Visibility: formbind.Hidden, Validity: formbind.Neutral}, b.State())
	assert.False(t, b.Panel().Visible())
	assert.False(t, input.HasClass(formbind.ClassInvalid))
	assert.False(t, input.HasClass(formbind.ClassValid))
	assert.False(t, errRegion.Visible())
	for _, name := range password.RuleNames() {
		row, _ := b.Panel().Row(name)
		assert.False(t, row.HasClass(feedback.ClassPassed))
		assert.False(t, row.HasClass(feedback.ClassFailed))
	}
	assert.True(t, doc.Submit(form))

	doc.Blur()
	doc.Focus(input)
	assert.False(t, b.Panel().Visible())
}

func TestIndependentBindings(t *testing.T) {
	t.Parallel()
	doc := newDoc(t)
	first, err := formbind.Bind(doc, "pw", "signup")
	require.NoError(t, err)
	second, err := formbind.Bind(doc, "pw2", "signup")
	require.NoError(t, err)

	pw := mustFind(t, doc, "pw")
	pw2 := mustFind(t, doc, "pw2")
	doc.SetValue(pw, "Abc123!!")

	assert.True(t, pw.HasClass(formbind.ClassValid))
	assert.False(t, pw2.HasClass(formbind.ClassValid))
	assert.False(t, pw2.HasClass(formbind.ClassInvalid))
	assert.Equal(t, formbind.State{}, second.State())
	assert.False(t, second.Panel().Visible())
	for _, name := range password.RuleNames() {
		row, _ := second.Panel().Row(name)
		assert.False(t, row.HasClass(feedback.ClassPassed))
	}

	// The second field is empty, so the shared form is blocked by it alone.
	form := mustFind(t, doc, "signup")
	assert.False(t, doc.Submit(form))
	assert.Equal(t, formbind.Valid, first.State().Validity)
	assert.Equal(t, formbind.Invalid, second.State().Validity)
}

func TestCustomEngineAndNotifierFunc(t *testing.T) {
	t.Parallel()
	doc := newDoc(t)
	var got string
	engine := password.New(password.WithMessages(password.EnglishMessages()))
	_, err := formbind.Bind(doc, "pw", "signup",
		formbind.WithEngine(engine),
		formbind.WithNotifier(formbind.NotifierFunc(func(msg string) { got = msg })),
	)
	require.NoError(t, err)

	assert.False(t, doc.Submit(mustFind(t, doc, "signup")))
	assert.Equal(t, password.EnglishMessages().SubmitBlocked, got)
	_, ok := doc.FindByID("pw-error")
	assert.False(t, ok)

	panel, ok := doc.FindByID("pw-feedback")
	require.True(t, ok)
	assert.Contains(t, panel.Text(), password.EnglishMessages().Instructions)
}

func TestStateStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "hidden", formbind.Hidden.String())
	assert.Equal(t, "visible", formbind.Visible.String())
	assert.Equal(t, "neutral", formbind.Neutral.String())
	assert.Equal(t, "valid", formbind.Valid.String())
	assert.Equal(t, "invalid", formbind.Invalid.String())
}

func TestVisibilityTransitions(t *testing.T) {
	t.Parallel()

	type step struct {
		action string
		value  string
		want   formbind.Visibility
	}
	tests := []struct {
		name     string
		optional bool
		steps    []step
	}{
		{
			name: "mandatory",
			steps: []step{
				{action: "submit", want: formbind.Visible},
				{action: "input", value: "", want: formbind.Visible},
				{action: "focus", want: formbind.Visible},
			},
		},
		{
			name:     "optional",
			optional: true,
			steps: []step{
				{action: "focus", want: formbind.Hidden},
				{action: "input", value: "a", want: formbind.Visible},
				{action: "focus", want: formbind.Visible},
				{action: "input", value: "", want: formbind.Hidden},
				{action: "focus", want: formbind.Hidden},
				{action: "input", value: "b", want: formbind.Visible},
				{action: "submit", want: formbind.Visible},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := newDoc(t)
			b, err := formbind.Bind(doc, "pw", "signup", formbind.WithOptional(tt.optional))
			require.NoError(t, err)
			input := mustFind(t, doc, "pw")

			for i, s := range tt.steps {
				switch s.action {
				case "focus":
					doc.Blur()
					doc.Focus(input)
				case "input":
					doc.SetValue(input, s.value)
				case "submit":
					doc.Submit(mustFind(t, doc, "signup"))
				}
				assert.Equal(t, s.want, b.State().Visibility, "step %d %s", i, s.action)
				assert.Equal(t, s.want == formbind.Visible, b.Panel().Visible(), "step %d %s", i, s.action)
			}
		})
	}
	assert.Equal(t, "visible", formbind.Visible.Name())
}

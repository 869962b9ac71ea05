package feedback_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passcheck/pkg/dom"
	"github.com/dmitrymomot/passcheck/pkg/feedback"
	"github.com/dmitrymomot/passcheck/pkg/password"
)

func newInput(t *testing.T) (*dom.Document, dom.Element) {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(`<div class="field"><input id="pw"><span id="hint"></span></div>`))
	require.NoError(t, err)
	input, ok := doc.FindByID("pw")
	require.True(t, ok)
	return doc, input
}

func TestCreate(t *testing.T) {
	t.Parallel()
	doc, input := newInput(t)

	panel, err := feedback.Create(doc, input, password.EnglishMessages())
	require.NoError(t, err)

	root := panel.Element()
	siblings := input.Parent().Children()
	assert.Same(t, root, siblings[len(siblings)-1])
	assert.True(t, root.HasClass(feedback.ClassPanel))
	assert.Equal(t, "pw-feedback", root.ID())
	assert.False(t, panel.Visible())
	assert.Contains(t, root.Text(), "Password must contain:")

	for _, name := range password.RuleNames() {
		item := root.QuerySelectorByAttr(feedback.AttrRule, name)
		require.NotNil(t, item, name)
		assert.False(t, item.HasClass(feedback.ClassPassed))
		assert.False(t, item.HasClass(feedback.ClassFailed))
		assert.True(t, strings.HasPrefix(item.Text(), feedback.GlyphNeutral))
		assert.Contains(t, item.Text(), password.EnglishMessages().For(name))
	}
}

func TestCreateErrors(t *testing.T) {
	t.Parallel()
	doc, input := newInput(t)

	_, err := feedback.Create(nil, input, password.DefaultMessages())
	assert.ErrorIs(t, err, feedback.ErrNilSurface)

	_, err = feedback.Create(doc, nil, password.DefaultMessages())
	assert.ErrorIs(t, err, feedback.ErrNoTarget)

	_, err = feedback.Create(doc, doc.CreateElement("input"), password.DefaultMessages())
	assert.ErrorIs(t, err, feedback.ErrNoParent)
}

func TestUpdateAndReset(t *testing.T) {
	t.Parallel()
	doc, input := newInput(t)
	panel, err := feedback.Create(doc, input, password.DefaultMessages())
	require.NoError(t, err)

	panel.Update(password.Validate("abc123!!"))
	for _, name := range password.RuleNames() {
		item, ok := panel.Row(name)
		require.True(t, ok)
		if name == password.RuleUppercase {
			assert.True(t, item.HasClass(feedback.ClassFailed))
			assert.False(t, item.HasClass(feedback.ClassPassed))
			assert.True(t, strings.HasPrefix(item.Text(), feedback.GlyphFailed))
			continue
		}
		assert.True(t, item.HasClass(feedback.ClassPassed), name)
		assert.False(t, item.HasClass(feedback.ClassFailed), name)
		assert.True(t, strings.HasPrefix(item.Text(), feedback.GlyphPassed), name)
	}

	panel.Update(password.Validate("Abc123!!"))
	item, _ := panel.Row(password.RuleUppercase)
	assert.True(t, item.HasClass(feedback.ClassPassed))
	assert.False(t, item.HasClass(feedback.ClassFailed))

	panel.Reset()
	for _, name := range password.RuleNames() {
		item, _ := panel.Row(name)
		assert.False(t, item.HasClass(feedback.ClassPassed))
		assert.False(t, item.HasClass(feedback.ClassFailed))
		assert.True(t, strings.HasPrefix(item.Text(), feedback.GlyphNeutral))
	}

	_, ok := panel.Row("unknown")
	assert.False(t, ok)
}

func TestEnsureStylesheet(t *testing.T) {
	t.Parallel()
	doc := dom.New()

	inserted, err := feedback.EnsureStylesheet(doc)
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = feedback.EnsureStylesheet(doc)
	require.NoError(t, err)
	assert.False(t, inserted)

	assert.Equal(t, 1, strings.Count(doc.String(), feedback.StylesheetID))
	style, ok := doc.FindByID(feedback.StylesheetID)
	require.True(t, ok)
	assert.Same(t, doc.Head(), style.Parent())
	assert.Contains(t, style.Text(), ".rule-item.passed")
	assert.Contains(t, style.Text(), ".rule-item.failed")

	_, err = feedback.EnsureStylesheet(nil)
	assert.ErrorIs(t, err, feedback.ErrNilSurface)
}

func TestPanelComponent(t *testing.T) {
	t.Parallel()

	render := func(t *testing.T, p feedback.PanelParams) *dom.Document {
		t.Helper()
		var b strings.Builder
		require.NoError(t, feedback.PanelView(p).Render(context.Background(), &b))
		doc, err := dom.Parse(strings.NewReader(b.String()))
		require.NoError(t, err)
		return doc
	}

	t.Run("neutral and hidden", func(t *testing.T) {
		t.Parallel()
		doc := render(t, feedback.PanelParams{ID: "pw-feedback", Messages: password.EnglishMessages()})
		root, ok := doc.FindByID("pw-feedback")
		require.True(t, ok)
		assert.False(t, root.Visible())
		for _, name := range password.RuleNames() {
			item := root.QuerySelectorByAttr(feedback.AttrRule, name)
			require.NotNil(t, item)
			assert.True(t, item.HasClass(feedback.ClassItem))
			assert.False(t, item.HasClass(feedback.ClassPassed))
			assert.False(t, item.HasClass(feedback.ClassFailed))
		}
	})

	t.Run("with result", func(t *testing.T) {
		t.Parallel()
		res := password.Validate(" Abc123!")
		doc := render(t, feedback.PanelParams{ID: "p", Messages: password.EnglishMessages(), Result: &res, Visible: true})
		root, _ := doc.FindByID("p")
		assert.True(t, root.Visible())

		item := root.QuerySelectorByAttr(feedback.AttrRule, password.RuleNoSpaces)
		require.NotNil(t, item)
		assert.True(t, item.HasClass(feedback.ClassFailed))
		assert.True(t, strings.HasPrefix(item.Text(), feedback.GlyphFailed))

		item = root.QuerySelectorByAttr(feedback.AttrRule, password.RuleDigit)
		require.NotNil(t, item)
		assert.True(t, item.HasClass(feedback.ClassPassed))
	})

	t.Run("escapes messages", func(t *testing.T) {
		t.Parallel()
		msgs := password.EnglishMessages()
		msgs.Instructions = `<script>alert(1)</script>`
		var b strings.Builder
		require.NoError(t, feedback.PanelView(feedback.PanelParams{Messages: msgs}).Render(context.Background(), &b))
		assert.NotContains(t, b.String(), "<script>")
	})
}

func TestStylesheetComponent(t *testing.T) {
	t.Parallel()
	var b strings.Builder
	require.NoError(t, feedback.Stylesheet().Render(context.Background(), &b))
	assert.True(t, strings.HasPrefix(b.String(), `<style id="`+feedback.StylesheetID+`">`))
	assert.Contains(t, b.String(), feedback.CSS)
}

func TestPanelView_MatchesCreate(t *testing.T) {
	t.Parallel()

	res := password.Validate("abc")
	tests := []struct {
		name    string
		result  *password.Result
		visible bool
	}{
		{name: "hidden"},
		{name: "updated and shown", result: &res, visible: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, input := newInput(t)
			panel, err := feedback.Create(doc, input, password.DefaultMessages())
			require.NoError(t, err)
			if tt.result != nil {
				panel.Update(*tt.result)
			}
			if tt.visible {
				panel.Show()
			}
			want, err := doc.OuterHTML(panel.Element())
			require.NoError(t, err)

			var b strings.Builder
			require.NoError(t, feedback.PanelView(feedback.PanelParams{
				ID:       feedback.PanelID("pw"),
				Messages: password.DefaultMessages(),
				Result:   tt.result,
				Visible:  tt.visible,
			}).Render(context.Background(), &b))
			assert.Equal(t, want, b.String())
		})
	}
}

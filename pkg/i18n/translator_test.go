package i18n_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/passcheck/pkg/i18n"
	"github.com/dmitrymomot/passcheck/translations"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"hello":   "Hello",
			"welcome": "Welcome, %{name}!",
			"password": map[string]any{
				"rules": map[string]any{"min_length": "At least %{min} characters"},
			},
		},
		"fa": {
			"hello": "سلام",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{"": {"a": "b"}},
		})
		assert.Error(t, err)
	})

	t.Run("default language first", func(t *testing.T) {
		t.Parallel()
		tr := newTestTranslator(t, i18n.WithDefaultLanguage("fa"))
		assert.Equal(t, []string{"fa", "en"}, tr.SupportedLanguages())
		assert.Equal(t, "fa", tr.DefaultLanguage())
	})
}

func TestTranslatorT(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.T("en", "hello"))
	assert.Equal(t, "سلام", tr.T("fa", "hello"))
	assert.Equal(t, "Welcome, Ann!", tr.T("en", "welcome", "name", "Ann"))
	assert.Equal(t, "At least 8 characters", tr.T("en", "password.rules.min_length", "min", "8"))
	assert.Equal(t, "Welcome, %{name}!", tr.T("en", "welcome"))
	assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
	assert.Equal(t, "hello", tr.T("de", "hello"))
	assert.True(t, tr.HasTranslation("en", "password.rules.min_length"))
	assert.False(t, tr.HasTranslation("en", "password.rules"))
	assert.False(t, tr.HasTranslation("fa", "welcome"))

	strict := newTestTranslator(t, i18n.WithFallbackToKey(false))
	assert.Empty(t, strict.T("en", "missing.key"))
}

func TestTranslatorTd(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	assert.Equal(t, "Hello", tr.Td("en", "hello", "fallback"))
	assert.Equal(t, "fallback", tr.Td("fa", "welcome", "fallback"))
	assert.Equal(t, "Hi Bob", tr.Td("en", "nope", "Hi %{name}", "name", "Bob"))
}

func TestTranslatorTc(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "fa")
	assert.Equal(t, "سلام", tr.Tc(ctx, "hello"))
	assert.Equal(t, "Hello", tr.Tc(context.Background(), "hello"))
}

func TestTranslatorMatch(t *testing.T) {
	t.Parallel()
	tr := newTestTranslator(t, i18n.WithDefaultLanguage("fa"))

	tests := []struct {
		name  string
		prefs []string
		want  string
	}{
		{"no preferences", nil, "fa"},
		{"exact", []string{"en"}, "en"},
		{"regional variant", []string{"en-GB"}, "en"},
		{"accept language header", []string{"de-DE,de;q=0.9,en;q=0.5"}, "en"},
		{"first preference wins", []string{"fa", "en"}, "fa"},
		{"unsupported", []string{"ja"}, "fa"},
		{"garbage", []string{";;;"}, "fa"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tr.Match(tt.prefs...))
		})
	}
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	t.Run("merges files per language", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"lang/a.yaml":   {Data: []byte("en:\n  a: A\n")},
			"lang/b.yml":    {Data: []byte("en:\n  b: B\nfa:\n  a: الف\n")},
			"lang/skip.txt": {Data: []byte("ignored")},
		}
		data, err := i18n.NewFSAdapter(fsys, "lang").Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "A", data["en"]["a"])
		assert.Equal(t, "B", data["en"]["b"])
		assert.Equal(t, "الف", data["fa"]["a"])
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{"bad.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(fsys, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
	})

	t.Run("missing dir", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, "nope").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("nil fs", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFSAdapter(nil, ".").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNilFS)
	})

	t.Run("cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(fstest.MapFS{}, ".").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
	})
}

func TestEmbeddedTranslations(t *testing.T) {
	t.Parallel()

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(translations.FS, "."))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"en", "fa"}, tr.SupportedLanguages())

	keys := []string{
		"password.instructions",
		"password.submit_blocked",
		"password.rules.required",
		"password.rules.min_length",
		"password.rules.uppercase",
		"password.rules.lowercase",
		"password.rules.digit",
		"password.rules.special",
		"password.rules.no_spaces",
	}
	for _, lang := range tr.SupportedLanguages() {
		for _, key := range keys {
			assert.True(t, tr.HasTranslation(lang, key), "%s: %s", lang, key)
		}
	}
}

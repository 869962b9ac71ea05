package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing else matches.
const DefaultLanguage = "en"

// Translator resolves translation keys for a language.
// It is safe for concurrent use.
type Translator struct {
	translations   map[string]map[string]any
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger

	mu      sync.RWMutex
	langs   []string
	matcher language.Matcher
}

// NewTranslator loads translations through adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, values := range translations {
		if lang == "" {
			return nil, fmt.Errorf("empty language code found")
		}
		if values == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}

	t.translations = translations
	t.buildMatcher()
	t.logger.InfoContext(ctx, "translations loaded", "languages", t.langs, "default", t.defaultLang)
	return t, nil
}

// buildMatcher orders languages with the default first, so the matcher falls back to it.
func (t *Translator) buildMatcher() {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	if i := slices.Index(langs, t.defaultLang); i > 0 {
		langs = append([]string{t.defaultLang}, slices.Delete(langs, i, i+1)...)
	}

	tags := make([]language.Tag, 0, len(langs))
	matched := make([]string, 0, len(langs))
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			t.logger.Warn("skipping unparsable language code", "lang", lang, "error", err)
			continue
		}
		tags = append(tags, tag)
		matched = append(matched, lang)
	}

	t.langs = matched
	if len(tags) > 0 {
		t.matcher = language.NewMatcher(tags)
	}
}

// SupportedLanguages returns language codes with translations, default first.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// DefaultLanguage returns the configured default language.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for the given preferences. Each
// preference may be a plain code ("fa") or a full Accept-Language value.
// The default language is returned when nothing matches.
func (t *Translator) Match(preferences ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.matcher == nil {
		return t.defaultLang
	}

	var tags []language.Tag
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx >= len(t.langs) {
		return t.defaultLang
	}
	return t.langs[idx]
}

// MatchSupported is Match for a single explicit choice. It reports false
// instead of falling back to the default language.
func (t *Translator) MatchSupported(pref string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	pref = strings.TrimSpace(pref)
	if t.matcher == nil || pref == "" {
		return "", false
	}
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return "", false
	}
	_, idx, conf := t.matcher.Match(tags...)
	if conf == language.No || idx >= len(t.langs) {
		return "", false
	}
	return t.langs[idx], true
}

// HasTranslation reports whether key resolves to a string for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	val, ok := lookup(langMap, key)
	if !ok {
		return false
	}
	_, ok = val.(string)
	return ok
}

// T translates key for lang. Args are key/value pairs substituted into %{name}
// placeholders. Missing keys return the key itself unless fallback is disabled.
func (t *Translator) T(lang, key string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return sprintf(s, args)
	}
	if t.fallbackToKey {
		return sprintf(key, args)
	}
	return ""
}

// Td translates key for lang, returning defaultValue when the key is missing.
func (t *Translator) Td(lang, key, defaultValue string, args ...string) string {
	if s, ok := t.resolve(lang, key); ok {
		return sprintf(s, args)
	}
	return sprintf(defaultValue, args)
}

// Tc translates key for the language stored in ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

func (t *Translator) resolve(lang, key string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	langMap, ok := t.translations[lang]
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("language not supported", "lang", lang, "key", key)
		}
		return "", false
	}

	val, ok := lookup(langMap, key)
	if !ok {
		if t.missingLogMode {
			t.logger.Warn("translation not found", "lang", lang, "key", key)
		}
		return "", false
	}

	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	}
	if t.missingLogMode {
		t.logger.Warn("translation is not a string", "lang", lang, "key", key, "type", fmt.Sprintf("%T", val))
	}
	return "", false
}

// lookup traverses nested maps using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// sprintf substitutes %{name} placeholders from key/value pairs.
// Unknown placeholders are kept; an odd trailing arg is ignored.
func sprintf(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

package i18n

import (
	"net/http"
	"strings"
)

// maxLangValueLength caps client-provided language values before parsing.
const maxLangValueLength = 4096

// ExtractorConfig holds the request sources checked by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
}

// ExtractorOption configures the language extractor.
type ExtractorOption func(*ExtractorConfig)

// WithCookieName sets the cookie holding an explicit language choice.
func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

// WithQueryParamName sets the query parameter holding an explicit language choice.
func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

// DefaultLangExtractor checks, in order, the query parameter (default "lang"),
// the cookie (default "lang") and Accept-Language, and matches them against
// the translator's languages. Without a usable value it returns the
// translator's default language.
func DefaultLangExtractor(t *Translator, opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(r *http.Request) string {
		var prefs []string
		if v := clean(r.URL.Query().Get(cfg.QueryParamName)); v != "" {
			prefs = append(prefs, v)
		}
		if cookie, err := r.Cookie(cfg.CookieName); err == nil {
			if v := clean(cookie.Value); v != "" {
				prefs = append(prefs, v)
			}
		}
		if v := clean(r.Header.Get("Accept-Language")); v != "" {
			prefs = append(prefs, v)
		}
		return t.Match(prefs...)
	}
}

func clean(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > maxLangValueLength {
		v = v[:maxLangValueLength]
	}
	return v
}

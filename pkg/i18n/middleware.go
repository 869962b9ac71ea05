package i18n

import (
	"net/http"

	"github.com/dmitrymomot/passcheck/pkg/cookie"
)

// LangExtractor returns the language code for a request, or "" when unknown.
type LangExtractor func(r *http.Request) string

// Middleware stores the language picked by extr in the request context.
// Requests where extr returns "" get DefaultLanguage.
func Middleware(extr LangExtractor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := ""
			if extr != nil {
				lang = extr(r)
			}
			if lang == "" {
				lang = DefaultLanguage
			}
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}

// langCookieMaxAge keeps an explicit language choice for a year.
const langCookieMaxAge = 365 * 24 * 60 * 60

// PersistQueryLang stores a supported language passed in the query parameter
// (default "lang") in the language cookie (default "lang"), so later requests
// without the parameter keep it. Unsupported values leave the cookie alone.
func PersistQueryLang(t *Translator, cookies *cookie.Manager, opts ...ExtractorOption) func(http.Handler) http.Handler {
	cfg := &ExtractorConfig{
		CookieName:     "lang",
		QueryParamName: "lang",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if v := clean(r.URL.Query().Get(cfg.QueryParamName)); v != "" {
				if lang, ok := t.MatchSupported(v); ok {
					current, _ := cookies.Get(r, cfg.CookieName)
					if current != lang {
						_ = cookies.Set(w, cfg.CookieName, lang, cookie.WithMaxAge(langCookieMaxAge))
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

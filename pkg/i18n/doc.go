// Package i18n loads translation tables and resolves keys per language.
//
// Translations are nested YAML maps with one top-level key per language,
// loaded through a TranslationAdapter (FSAdapter for embed.FS or os.DirFS,
// MapAdapter for in-memory data). Keys are dot separated and values may
// contain %{name} placeholders:
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(translations.FS, "."),
//		i18n.WithDefaultLanguage("fa"),
//	)
//	msg := tr.T("en", "password.rules.min_length")
//
// The request language is chosen by a LangExtractor and stored in the
// request context by Middleware. DefaultLangExtractor checks the "lang" query
// parameter, the "lang" cookie and the Accept-Language header, and matches
// them against the loaded languages with golang.org/x/text/language:
//
//	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(tr)))
//	...
//	tr.Tc(r.Context(), "password.instructions")
package i18n

// Package passwordfield serves the password checklist over HTTP.
//
// The service renders the same panel markup as pkg/feedback and drives it
// with datastar: the client posts its signals on focus, input and submit,
// the server answers with an element patch for the panel and a signals
// patch carrying the input validity.
//
//	svc := passwordfield.NewService(cfg,
//		passwordfield.WithTranslator(tr),
//		passwordfield.WithLogger(log),
//	)
//	r.Use(i18n.PersistQueryLang(tr, cookies))
//	r.With(i18n.Middleware(i18n.DefaultLangExtractor(tr))).Mount(cfg.BasePath, svc.Handle())
//
// Routes:
//
//	GET      /rules      rule names and messages in the request language
//	GET|POST /feedback   panel patch plus validity signals
//	GET      /style.css  panel stylesheet
//	GET      /demo       demo page with a bound password field
//	POST     /demo       native submission, checked again on the server
package passwordfield

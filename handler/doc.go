// Package handler adapts typed request handlers to net/http.
//
// A HandlerFunc receives a Context and a request struct filled by the
// configured binders, and returns a Response:
//
//	type feedbackRequest struct {
//		Password string `json:"password" query:"password"`
//	}
//
//	r.Get("/feedback", handler.Wrap(
//		func(ctx handler.Context, req feedbackRequest) handler.Response {
//			return handler.Templ(view(req), handler.WithTarget("#pw-feedback"))
//		},
//		handler.WithBinders[handler.Context, feedbackRequest](binder.Signals(), binder.Query()),
//	))
//
// Templ responses are sent as datastar element patches over SSE when the
// request comes from datastar and as plain HTML otherwise. TemplWithSignals
// also patches signals, JSON writes an envelope with data or error.
//
// Errors from binders and responses go to the ErrorHandler; NewErrorHandler
// logs them with the request id and answers with a status derived from
// HTTPError.
package handler

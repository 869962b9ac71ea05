// Package binder fills request structs from HTTP requests.
//
// Each binder handles one source and returns ErrBinderNotApplicable when the
// request does not carry that source, so several binders can be chained with
// handler.WithBinders and every applicable one runs in order:
//
//	type FeedbackRequest struct {
//		Password string `json:"password" form:"password" query:"password"`
//		Optional bool   `json:"optional" form:"optional" query:"optional"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, FeedbackRequest](
//		binder.Signals(), // datastar signals
//		binder.JSON(),    // application/json body
//		binder.Form(),    // urlencoded or multipart form
//		binder.Query(),   // query string
//	))
//
// Form and query binding support strings, booleans, integers, floats and
// pointers to them. Fields without a tag bind to the lower-cased field name;
// a "-" tag skips the field.
package binder

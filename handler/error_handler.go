package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/passcheck/pkg/logger"
	"github.com/dmitrymomot/passcheck/pkg/requestid"
	"github.com/dmitrymomot/passcheck/pkg/validator"
)

// statusOf maps an error to the response status.
func statusOf(err error) int {
	if validator.IsValidationError(err) {
		return ErrUnprocessableEntity.Code
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return http.StatusInternalServerError
}

// NewErrorHandler logs err with the request id and writes a response: a JSON
// envelope for datastar and JSON clients, plain text otherwise. Datastar
// requests get JSON because an SSE stream may already have started.
func NewErrorHandler(log *slog.Logger) ErrorHandler[Context] {
	if log == nil {
		log = slog.Default()
	}
	return func(ctx Context, err error) {
		r := ctx.Request()
		status := statusOf(err)

		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.LogAttrs(r.Context(), level, "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Bool("is_datastar", IsDataStar(r)),
			logger.Component("error_handler"),
		)

		if IsDataStar(r) || mediaTypeIsJSON(r) {
			if renderErr := JSONError(err).Render(ctx.ResponseWriter(), r); renderErr != nil {
				log.Error("failed to render error", logger.Error(renderErr))
			}
			return
		}
		http.Error(ctx.ResponseWriter(), http.StatusText(status), status)
	}
}

func mediaTypeIsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return accept == "application/json" || r.Header.Get("Content-Type") == "application/json"
}

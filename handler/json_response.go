package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/passcheck/pkg/validator"
)

// JSONResponse is the envelope written by JSON and JSONError.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON writes v as data with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError writes err as an error envelope. Validation errors map to 422
// with per-field translation keys, HTTPError to its own code, anything
// else to 500.
func JSONError(err error) Response {
	status, detail := errorDetail(err)
	return jsonResponse{status: status, body: JSONResponse{Error: detail}}
}

func errorDetail(err error) (int, *ErrorDetail) {
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		detail := &ErrorDetail{
			Code:    ErrUnprocessableEntity.Key,
			Message: verrs.Error(),
			Details: make(map[string][]string),
		}
		for _, ve := range verrs {
			detail.Details[ve.Field] = append(detail.Details[ve.Field], ve.TranslationKey)
		}
		return ErrUnprocessableEntity.Code, detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}
	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}

package binder

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Size limits for request bodies.
const (
	DefaultMaxJSONSize = 1 << 20
	DefaultMaxMemory   = 10 << 20
)

// Binder fills v from r.
type Binder = func(r *http.Request, v any) error

// Query binds `query` tagged fields from the URL query string.
func Query() Binder {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		if len(values) == 0 {
			return ErrBinderNotApplicable
		}
		return bindValues(v, "query", values, ErrInvalidQuery)
	}
}

// Form binds `form` tagged fields from an urlencoded or multipart body.
func Form() Binder {
	return func(r *http.Request, v any) error {
		switch mediaType(r) {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.PostForm, ErrInvalidForm)
		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return errors.Join(ErrInvalidForm, err)
			}
			return bindValues(v, "form", r.MultipartForm.Value, ErrInvalidForm)
		}
		return ErrBinderNotApplicable
	}
}

// JSON decodes an application/json body into v. Datastar requests are left
// to Signals.
func JSON() Binder {
	return func(r *http.Request, v any) error {
		if mediaType(r) != "application/json" || r.Header.Get("Datastar-Request") == "true" {
			return ErrBinderNotApplicable
		}
		if r.Body == nil {
			return fmt.Errorf("%w: empty body", ErrInvalidJSON)
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, DefaultMaxJSONSize+1))
		if err != nil {
			return errors.Join(ErrInvalidJSON, err)
		}
		if len(body) > DefaultMaxJSONSize {
			return fmt.Errorf("%w: body exceeds %d bytes", ErrInvalidJSON, DefaultMaxJSONSize)
		}
		if err := json.Unmarshal(body, v); err != nil {
			return errors.Join(ErrInvalidJSON, err)
		}
		return nil
	}
}

// Signals decodes datastar signals into v. Signals travel in the "datastar"
// query parameter for GET requests and in the JSON body otherwise.
func Signals() Binder {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return errors.Join(ErrInvalidSignals, err)
		}
		return nil
	}
}

func mediaType(r *http.Request) string {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return ""
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return mt
}

package handler

import (
	"net/http"
	"strings"

	"github.com/starfederation/datastar-go/datastar"
)

// DataStarQueryParam carries signals on datastar GET requests.
const DataStarQueryParam = "datastar"

// Patch modes re-exported for callers that do not import datastar.
const (
	PatchOuter = datastar.ElementPatchModeOuter
	PatchInner = datastar.ElementPatchModeInner
)

// IsDataStar reports whether r was sent by datastar.
func IsDataStar(r *http.Request) bool {
	if r.Header.Get("Datastar-Request") == "true" {
		return true
	}
	if strings.Contains(r.Header.Get("Accept"), "text/event-stream") {
		return true
	}
	return r.URL.Query().Has(DataStarQueryParam)
}

// NewSSE starts a datastar event stream on w.
func NewSSE(w http.ResponseWriter, r *http.Request) *datastar.ServerSentEventGenerator {
	return datastar.NewSSE(w, r)
}

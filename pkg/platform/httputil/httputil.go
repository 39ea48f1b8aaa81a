// Package httputil centralizes JSON response envelopes so every handler emits
// the same shapes for success and failure.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "valuesprism/pkg/domain-errors"
)

// WriteJSON serializes v with the given status. Encoding failures are silently
// dropped; by the time encoding runs the status line is already committed.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into the standard error envelope.
// Internal errors omit the description so infrastructure details never reach
// clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		if msg := dErrors.MessageOf(err); msg != "" {
			body["error_description"] = msg
		}
	}
	WriteJSON(w, dErrors.ToHTTPStatus(code), body)
}

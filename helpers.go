package hxtodo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
)

// Render writes a templ component to the HTTP response with a 200 status.
//
// The component is rendered into a buffer first, so a failure never leaves a
// half-written page behind; it is returned wrapped in ErrRender and nothing
// is written.
func Render(w http.ResponseWriter, r *http.Request, component templ.Component) error {
	var buf bytes.Buffer
	if err := component.Render(r.Context(), &buf); err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write(buf.Bytes())
	return err
}

// IsHTMX returns true if the request originated from htmx.
//
// htmx sends HX-Request: true on all requests, so full-page loads can be told
// apart from partial refreshes.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// BuildTriggerHeader builds an HX-Trigger header value.
//
//  1. Event only: "todos:changed" -> todos:changed
//  2. Event with data: "todos:changed" + {"id": 1} -> {"todos:changed":{"id":1}}
//
// With data, htmx fires the event with evt.detail set to the data object.
func BuildTriggerHeader(event string, data map[string]any) string {
	if event == "" {
		return ""
	}
	if data == nil {
		return event
	}
	out, _ := json.Marshal(map[string]any{event: data})
	return string(out)
}

package hxtodo

import (
	"net/http"

	"github.com/a-h/templ"
)

// Result is returned from route handlers to describe the response.
//
// Result is a fluent builder: handlers pick a status and body component and
// optionally add headers, an HX-Trigger event or an ETag. The router renders
// the body after the handler returns, so handlers never touch the
// ResponseWriter.
//
//	// Fragment with default 200
//	return hxtodo.OK(components.TodoList.With(props))
//
//	// Created, broadcasting an event
//	return hxtodo.Created(item).Trigger("todos:changed")
//
//	// Expected failure with no body
//	return hxtodo.Empty(http.StatusNotFound)
type Result struct {
	body        templ.Component
	status      int
	contentType string
	headers     map[string]string
	trigger     string
	triggerData map[string]any
	etag        string
}

// OK creates a 200 result rendering body.
func OK(body templ.Component) Result {
	return Result{body: body, status: http.StatusOK}
}

// Created creates a 201 result rendering body.
func Created(body templ.Component) Result {
	return Result{body: body, status: http.StatusCreated}
}

// NoContent creates a 204 result.
func NoContent() Result {
	return Result{status: http.StatusNoContent}
}

// Empty creates a result with the given status and no body.
func Empty(status int) Result {
	return Result{status: status}
}

// PlainText creates a text/plain result. s is written verbatim.
func PlainText(status int, s string) Result {
	return Result{
		body:        templ.Raw(s),
		status:      status,
		contentType: "text/plain; charset=utf-8",
	}
}

// Status overrides the HTTP status code.
func (r Result) Status(code int) Result {
	r.status = code
	return r
}

// Header sets a custom response header.
func (r Result) Header(key, value string) Result {
	if r.headers == nil {
		r.headers = make(map[string]string)
	}
	r.headers[key] = value
	return r
}

// Trigger emits an event via the HX-Trigger header. Other parts of the page
// can listen for it with hx-trigger="<event> from:body".
func (r Result) Trigger(event string, data ...map[string]any) Result {
	r.trigger = event
	if len(data) > 0 {
		r.triggerData = data[0]
	}
	return r
}

// ETag sets the entity tag. For 200 results the router answers a matching
// If-None-Match with 304 Not Modified.
func (r Result) ETag(tag string) Result {
	r.etag = tag
	return r
}

// GetBody returns the body component, nil if the result has none.
func (r Result) GetBody() templ.Component {
	return r.body
}

// GetStatus returns the HTTP status code (0 means not set, use default 200).
func (r Result) GetStatus() int {
	return r.status
}

// GetContentType returns the content type override, empty for HTML.
func (r Result) GetContentType() string {
	return r.contentType
}

// GetHeaders returns the response headers.
func (r Result) GetHeaders() map[string]string {
	return r.headers
}

// GetTrigger returns the trigger event name.
func (r Result) GetTrigger() string {
	return r.trigger
}

// GetTriggerData returns the trigger event data.
func (r Result) GetTriggerData() map[string]any {
	return r.triggerData
}

// GetETag returns the entity tag.
func (r Result) GetETag() string {
	return r.etag
}

package hxtodo

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
)

// TestResult holds the result of rendering a component or serving a request
// in tests.
//
// Provides convenience methods for asserting on HTML content, headers,
// status codes and triggered events.
type TestResult struct {
	HTML            string
	StatusCode      int
	Headers         http.Header
	TriggeredEvents []string

	eventDetails map[string]map[string]any
}

// TestRender renders a component and returns testable output.
//
// Use this for pure unit tests of rendering logic when you control props
// directly and don't need HTTP mechanics.
//
//	result, err := hxtodo.TestRender(components.TodoItem, props)
//	if !result.HTMLContains(`id="1"`) {
//	    t.Fatal("missing record id")
//	}
func TestRender[P any](comp Renderer[P], props P) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), comp, props)
}

// TestRenderWithContext renders a component with a custom context.
func TestRenderWithContext[P any](ctx context.Context, comp Renderer[P], props P) (*TestResult, error) {
	html, err := RenderString(ctx, comp.Render(ctx, props))
	if err != nil {
		return nil, err
	}
	return &TestResult{
		HTML:       html,
		StatusCode: http.StatusOK,
		Headers:    make(http.Header),
	}, nil
}

// TestRequest sends a request through h. Non-nil formData is sent as an
// application/x-www-form-urlencoded body.
//
//	result, err := hxtodo.TestRequest(srv.Handler(), "POST", "/todos", map[string]string{
//	    "id": "1", "text": "buy milk",
//	})
func TestRequest(h http.Handler, method, target string, formData map[string]string) (*TestResult, error) {
	b := NewTestRequest(method, target)
	if formData != nil {
		b.WithFormValues(formData)
	}
	return b.Execute(h)
}

// HTMLContains checks if the HTML contains a substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the HTML contains all the given substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// HTMLCount counts non-overlapping occurrences of substr.
func (r *TestResult) HTMLCount(substr string) int {
	return strings.Count(r.HTML, substr)
}

// HasEvent checks if an event was triggered.
func (r *TestResult) HasEvent(event string) bool {
	for _, e := range r.TriggeredEvents {
		if e == event {
			return true
		}
	}
	return false
}

// EventDetail returns the detail object sent with event, nil if the event
// carried none. JSON numbers arrive as float64.
func (r *TestResult) EventDetail(event string) map[string]any {
	return r.eventDetails[event]
}

// IsOK checks if the status code is 200.
func (r *TestResult) IsOK() bool {
	return r.StatusCode == http.StatusOK
}

// HasStatus checks if the status code matches.
func (r *TestResult) HasStatus(code int) bool {
	return r.StatusCode == code
}

// HasHeader checks if a header is set with the given value.
func (r *TestResult) HasHeader(key, value string) bool {
	return r.Headers.Get(key) == value
}

// GetHeader returns the value of a header.
func (r *TestResult) GetHeader(key string) string {
	return r.Headers.Get(key)
}

// parseTriggerHeader parses the HX-Trigger header value into event names,
// sorted for JSON objects, plus the detail object of each event that has one.
// The header can be a comma-separated list of names or a JSON object.
func parseTriggerHeader(trigger string) ([]string, map[string]map[string]any) {
	trigger = strings.TrimSpace(trigger)
	if trigger == "" {
		return nil, nil
	}

	if strings.HasPrefix(trigger, "{") {
		var raw map[string]any
		if err := json.Unmarshal([]byte(trigger), &raw); err != nil {
			return nil, nil
		}
		events := make([]string, 0, len(raw))
		var details map[string]map[string]any
		for name, v := range raw {
			events = append(events, name)
			if detail, ok := v.(map[string]any); ok {
				if details == nil {
					details = make(map[string]map[string]any)
				}
				details[name] = detail
			}
		}
		sort.Strings(events)
		return events, details
	}

	parts := strings.Split(trigger, ",")
	events := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			events = append(events, p)
		}
	}
	return events, nil
}

// TestRequestBuilder provides a fluent interface for building test requests.
//
//	result, err := hxtodo.NewTestRequest("PUT", "/todos/1").
//	    WithFormData("id", "1").
//	    WithFormData("text", "b").
//	    WithHeader("HX-Request", "true").
//	    Execute(handler)
type TestRequestBuilder struct {
	method      string
	url         string
	formData    url.Values
	body        string
	contentType string
	headers     map[string]string
	ctx         context.Context
}

// NewTestRequest creates a new test request builder.
func NewTestRequest(method, target string) *TestRequestBuilder {
	return &TestRequestBuilder{
		method:   method,
		url:      target,
		formData: url.Values{},
		headers:  make(map[string]string),
		ctx:      context.Background(),
	}
}

// WithFormData adds a form field. Calling it twice with the same key sends
// the field twice.
func (b *TestRequestBuilder) WithFormData(key, value string) *TestRequestBuilder {
	b.formData.Add(key, value)
	return b
}

// WithFormValues adds multiple form values to the request.
func (b *TestRequestBuilder) WithFormValues(data map[string]string) *TestRequestBuilder {
	for k, v := range data {
		b.formData.Add(k, v)
	}
	return b
}

// WithBody sets a raw body and content type, replacing any form data.
func (b *TestRequestBuilder) WithBody(contentType, body string) *TestRequestBuilder {
	b.contentType = contentType
	b.body = body
	b.formData = url.Values{}
	return b
}

// WithHeader adds a header to the request.
func (b *TestRequestBuilder) WithHeader(key, value string) *TestRequestBuilder {
	b.headers[key] = value
	return b
}

// WithContext sets the context for the request.
func (b *TestRequestBuilder) WithContext(ctx context.Context) *TestRequestBuilder {
	b.ctx = ctx
	return b
}

// Execute serves the request through h and records the response.
func (b *TestRequestBuilder) Execute(h http.Handler) (*TestResult, error) {
	var body io.Reader = strings.NewReader(b.body)
	contentType := b.contentType
	if len(b.formData) > 0 {
		body = strings.NewReader(b.formData.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req := httptest.NewRequest(b.method, b.url, body)
	req = req.WithContext(b.ctx)
	req.Header.Set("HX-Request", "true")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range b.headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	result := &TestResult{
		HTML:       rec.Body.String(),
		StatusCode: rec.Code,
		Headers:    rec.Header(),
	}
	if trigger := rec.Header().Get("HX-Trigger"); trigger != "" {
		result.TriggeredEvents, result.eventDetails = parseTriggerHeader(trigger)
	}
	return result, nil
}

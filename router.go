package hxtodo

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// HandlerFunc handles one matched route. It receives typed path parameters
// and, for routes declaring a form, the decoded body.
type HandlerFunc func(ctx context.Context, req *Request) Result

// Request wraps the incoming request with decoded inputs.
type Request struct {
	*http.Request
	Params Params
	Form   url.Values
}

// Params holds the path variables of a matched route.
type Params struct {
	strs  map[string]string
	uints map[string]uint64
}

// String returns a path variable as it appeared in the path (unescaped).
func (p Params) String(name string) string {
	return p.strs[name]
}

// Uint returns a {name:uint} path variable.
func (p Params) Uint(name string) uint64 {
	return p.uints[name]
}

type segmentKind int

const (
	segLiteral segmentKind = iota
	segString
	segUint
)

type segment struct {
	kind  segmentKind
	value string // literal text or variable name
}

type route struct {
	method   string
	pattern  string
	segments []segment
	handler  HandlerFunc
	form     []string
}

// RouteBuilder configures a registered route.
type RouteBuilder struct {
	route *route
}

// Form declares that the route takes a form-encoded body with exactly these
// fields. Requests with any other body shape fail with ErrDecode before the
// handler runs.
func (rb *RouteBuilder) Form(fields ...string) *RouteBuilder {
	rb.route.form = fields
	return rb
}

// Router dispatches requests through an ordered route table.
//
// Routes are tried in registration order; the first whose method and path
// both match handles the request. A path variable that fails to parse as its
// declared type is a mismatch, so the request falls through to later routes
// and finally to ErrNoRoute.
//
// Patterns are slash-separated segments. A segment is a literal, {name} for
// any non-empty string, or {name:uint} for an unsigned decimal integer:
//
//	rt.GET("/todos", listTodos)
//	rt.PUT("/todos/{id:uint}", updateTodo).Form("id", "text")
type Router struct {
	routes []*route
	logger *slog.Logger

	// OnError is called when dispatch fails: no route, a body that does not
	// decode, or a body component that fails to render.
	OnError func(http.ResponseWriter, *http.Request, error)
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithLogger sets the logger used by the default error handler.
func WithLogger(l *slog.Logger) RouterOption {
	return func(rt *Router) {
		rt.logger = l
	}
}

// NewRouter creates an empty router.
func NewRouter(opts ...RouterOption) *Router {
	rt := &Router{logger: slog.Default()}
	for _, opt := range opts {
		opt(rt)
	}

	rt.OnError = func(w http.ResponseWriter, r *http.Request, err error) {
		switch {
		case IsNoRoute(err):
			http.Error(w, "Not found", http.StatusNotFound)
		case IsDecodeError(err):
			http.Error(w, "Bad request", http.StatusBadRequest)
		default:
			rt.logger.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
			http.Error(w, "Internal error", http.StatusInternalServerError)
		}
	}

	return rt
}

// Handle registers a route. It panics on a malformed pattern so mistakes
// surface at startup, not during requests.
func (rt *Router) Handle(method, pattern string, h HandlerFunc) *RouteBuilder {
	segs, err := compilePattern(pattern)
	if err != nil {
		panic(fmt.Sprintf("hxtodo: %v", err))
	}
	r := &route{method: method, pattern: pattern, segments: segs, handler: h}
	rt.routes = append(rt.routes, r)
	return &RouteBuilder{route: r}
}

// GET registers a GET route.
func (rt *Router) GET(pattern string, h HandlerFunc) *RouteBuilder {
	return rt.Handle(http.MethodGet, pattern, h)
}

// POST registers a POST route.
func (rt *Router) POST(pattern string, h HandlerFunc) *RouteBuilder {
	return rt.Handle(http.MethodPost, pattern, h)
}

// PUT registers a PUT route.
func (rt *Router) PUT(pattern string, h HandlerFunc) *RouteBuilder {
	return rt.Handle(http.MethodPut, pattern, h)
}

// DELETE registers a DELETE route.
func (rt *Router) DELETE(pattern string, h HandlerFunc) *RouteBuilder {
	return rt.Handle(http.MethodDelete, pattern, h)
}

// Routes lists the route table as "METHOD pattern" in registration order.
func (rt *Router) Routes() []string {
	out := make([]string, len(rt.routes))
	for i, r := range rt.routes {
		out[i] = r.method + " " + r.pattern
	}
	return out
}

// ServeHTTP implements http.Handler.
func (rt *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	matched, params := rt.match(r)
	if matched == nil {
		rt.OnError(w, r, fmt.Errorf("%w: %s %s", ErrNoRoute, r.Method, r.URL.Path))
		return
	}

	req := &Request{Request: r, Params: params}
	if matched.form != nil {
		form, err := decodeForm(r, matched.form)
		if err != nil {
			rt.OnError(w, r, err)
			return
		}
		req.Form = form
	}

	rt.write(w, r, matched.handler(r.Context(), req))
}

func (rt *Router) match(r *http.Request) (*route, Params) {
	parts, ok := splitPath(r.URL.EscapedPath())
	if !ok {
		return nil, Params{}
	}
	for _, rte := range rt.routes {
		if rte.method != r.Method {
			continue
		}
		if params, ok := rte.match(parts); ok {
			return rte, params
		}
	}
	return nil, Params{}
}

func (r *route) match(parts []string) (Params, bool) {
	if len(parts) != len(r.segments) {
		return Params{}, false
	}

	var p Params
	for i, seg := range r.segments {
		part := parts[i]
		switch seg.kind {
		case segLiteral:
			if part != seg.value {
				return Params{}, false
			}
		case segString:
			if part == "" {
				return Params{}, false
			}
			if p.strs == nil {
				p.strs = make(map[string]string)
			}
			p.strs[seg.value] = part
		case segUint:
			n, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return Params{}, false
			}
			if p.uints == nil {
				p.uints = make(map[string]uint64)
			}
			p.uints[seg.value] = n
			if p.strs == nil {
				p.strs = make(map[string]string)
			}
			p.strs[seg.value] = part
		}
	}
	return p, true
}

// write renders the result body into a buffer and only then commits the
// status line, so a render failure can still become a clean 500.
func (rt *Router) write(w http.ResponseWriter, r *http.Request, res Result) {
	status := res.GetStatus()
	if status == 0 {
		status = http.StatusOK
	}

	var buf bytes.Buffer
	body := res.GetBody()
	if body != nil {
		if err := body.Render(r.Context(), &buf); err != nil {
			rt.OnError(w, r, fmt.Errorf("%w: %w", ErrRender, err))
			return
		}
	}

	h := w.Header()
	for k, v := range res.GetHeaders() {
		h.Set(k, v)
	}
	if trigger := BuildTriggerHeader(res.GetTrigger(), res.GetTriggerData()); trigger != "" {
		h.Set("HX-Trigger", trigger)
	}
	if etag := res.GetETag(); etag != "" {
		h.Set("ETag", etag)
		if status == http.StatusOK && etagMatches(r.Header.Get("If-None-Match"), etag) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	if body != nil && h.Get("Content-Type") == "" {
		ct := res.GetContentType()
		if ct == "" {
			ct = "text/html; charset=utf-8"
		}
		h.Set("Content-Type", ct)
	}

	w.WriteHeader(status)
	if status != http.StatusNoContent && buf.Len() > 0 {
		_, _ = w.Write(buf.Bytes())
	}
}

func compilePattern(pattern string) ([]segment, error) {
	if !strings.HasPrefix(pattern, "/") {
		return nil, fmt.Errorf("pattern %q must start with /", pattern)
	}
	if pattern == "/" {
		return nil, nil
	}

	raw := strings.Split(pattern[1:], "/")
	segs := make([]segment, len(raw))
	for i, s := range raw {
		if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
			if s == "" {
				return nil, fmt.Errorf("pattern %q has an empty segment", pattern)
			}
			segs[i] = segment{kind: segLiteral, value: s}
			continue
		}

		name, kind, _ := strings.Cut(s[1:len(s)-1], ":")
		if name == "" {
			return nil, fmt.Errorf("pattern %q has an unnamed variable", pattern)
		}
		switch kind {
		case "", "string":
			segs[i] = segment{kind: segString, value: name}
		case "uint":
			segs[i] = segment{kind: segUint, value: name}
		default:
			return nil, fmt.Errorf("pattern %q: unknown variable type %q", pattern, kind)
		}
	}
	return segs, nil
}

// splitPath splits an escaped URL path into unescaped segments. "/" yields
// no segments; a trailing slash yields a final empty segment.
func splitPath(escaped string) ([]string, bool) {
	if escaped == "" || escaped == "/" {
		return nil, true
	}
	if !strings.HasPrefix(escaped, "/") {
		return nil, false
	}

	parts := strings.Split(escaped[1:], "/")
	for i, p := range parts {
		u, err := url.PathUnescape(p)
		if err != nil {
			return nil, false
		}
		parts[i] = u
	}
	return parts, true
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		if candidate == "*" || candidate == etag || candidate == "W/"+etag {
			return true
		}
	}
	return false
}

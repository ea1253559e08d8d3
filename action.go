package hxtodo

import (
	"encoding/json"
	"net/http"

	"github.com/a-h/templ"
)

// SwapMode defines htmx swap strategies for how response HTML replaces the
// target. See https://htmx.org/attributes/hx-swap/.
type SwapMode string

const (
	// SwapInner replaces only the target's contents. htmx's default.
	SwapInner SwapMode = "innerHTML"

	// SwapOuter replaces the entire target element including its tag.
	SwapOuter SwapMode = "outerHTML"

	// SwapBeforeEnd appends the response inside the target, after its last
	// child. Used for adding items to lists.
	SwapBeforeEnd SwapMode = "beforeend"

	// SwapNone discards the response.
	SwapNone SwapMode = "none"
)

// Action builds the htmx attributes for one request an element can make.
//
//	hxtodo.NewAction("/todos/1", http.MethodDelete).
//	    TargetClosest("li").
//	    Swap(hxtodo.SwapOuter).
//	    Attrs()
type Action struct {
	url       string
	method    string
	target    string
	swap      SwapMode
	vals      map[string]string
	vars      string
	indicator string
	on        map[string]string
}

// NewAction creates an action for url. An empty method means GET.
func NewAction(url, method string) *Action {
	if method == "" {
		method = http.MethodGet
	}
	return &Action{url: url, method: method}
}

// URL returns the request URL.
func (a *Action) URL() string {
	return a.url
}

// Method returns the HTTP method.
func (a *Action) Method() string {
	return a.method
}

// Target sets hx-target to a CSS selector.
func (a *Action) Target(selector string) *Action {
	a.target = selector
	return a
}

// TargetClosest targets the nearest ancestor matching selector.
func (a *Action) TargetClosest(selector string) *Action {
	a.target = "closest " + selector
	return a
}

// Swap sets hx-swap.
func (a *Action) Swap(mode SwapMode) *Action {
	a.swap = mode
	return a
}

// Vals adds static values to the request parameters (hx-vals).
func (a *Action) Vals(vals map[string]string) *Action {
	if a.vals == nil {
		a.vals = make(map[string]string, len(vals))
	}
	for k, v := range vals {
		a.vals[k] = v
	}
	return a
}

// Vars sets hx-vars, values computed client side. expr is usually "js:{...}".
func (a *Action) Vars(expr string) *Action {
	a.vars = expr
	return a
}

// Indicator sets hx-indicator.
func (a *Action) Indicator(selector string) *Action {
	a.indicator = selector
	return a
}

// On adds an inline event handler, rendered as hx-on:<event>.
func (a *Action) On(event, script string) *Action {
	if a.on == nil {
		a.on = make(map[string]string)
	}
	a.on[event] = script
	return a
}

// Attrs returns the attributes to spread onto the element.
func (a *Action) Attrs() templ.Attributes {
	attrs := WireAttrs(a.url, a.method, a.vals)
	if a.target != "" {
		attrs["hx-target"] = a.target
	}
	if a.swap != "" {
		attrs["hx-swap"] = string(a.swap)
	}
	if a.vars != "" {
		attrs["hx-vars"] = a.vars
	}
	if a.indicator != "" {
		attrs["hx-indicator"] = a.indicator
	}
	for event, script := range a.on {
		attrs["hx-on:"+event] = script
	}
	return attrs
}

// WireAttrs builds the minimal htmx attributes for a request: the verb
// attribute (hx-get, hx-post, ...) and, when vals is non-empty, hx-vals as a
// JSON object.
func WireAttrs(path, method string, vals map[string]string) templ.Attributes {
	attrs := templ.Attributes{}

	switch method {
	case http.MethodPost:
		attrs["hx-post"] = path
	case http.MethodPut:
		attrs["hx-put"] = path
	case http.MethodPatch:
		attrs["hx-patch"] = path
	case http.MethodDelete:
		attrs["hx-delete"] = path
	default:
		attrs["hx-get"] = path
	}

	if len(vals) > 0 {
		// encoding/json sorts map keys, keeping the output deterministic.
		data, _ := json.Marshal(vals)
		attrs["hx-vals"] = string(data)
	}

	return attrs
}

// MergeAttrs returns a new attribute map holding every entry of sets, later
// sets overriding earlier ones.
func MergeAttrs(sets ...templ.Attributes) templ.Attributes {
	out := templ.Attributes{}
	for _, s := range sets {
		for k, v := range s {
			out[k] = v
		}
	}
	return out
}

// Package hxtodochi serves the todo app from a chi router.
//
//	r := chi.NewRouter()
//	hxtodochi.Mount(r, srv.Handler())
package hxtodochi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Option configures Mount and New.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix mounts the handler under prefix, stripping it before the
// request reaches the handler.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = strings.TrimSuffix(prefix, "/")
	}
}

// Mount routes every method and path under the prefix (default: all paths)
// to h.
func Mount(r chi.Router, h http.Handler, opts ...Option) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.prefix != "" {
		h = http.StripPrefix(o.prefix, h)
	}
	r.Handle(o.prefix+"/*", h)
}

// New creates a chi router with h mounted behind chi's RealIP and Recoverer
// middleware.
func New(h http.Handler, opts ...Option) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	Mount(r, h, opts...)
	return r
}

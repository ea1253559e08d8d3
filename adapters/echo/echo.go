// Package hxtodoecho serves the todo app from an Echo instance.
//
// Mount the server's handler on an existing Echo instance:
//
//	e := echo.New()
//	hxtodoecho.Mount(e, srv.Handler())
//
// Or mount under a prefix, keeping other Echo routes alongside:
//
//	hxtodoecho.Mount(e, srv.Handler(), hxtodoecho.WithPrefix("/app"))
package hxtodoecho

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Option configures Mount and New.
type Option func(*options)

type options struct {
	prefix string
}

// WithPrefix mounts the handler under prefix. The prefix is stripped before
// the request reaches the handler, so routes keep their unprefixed patterns.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = strings.TrimSuffix(prefix, "/")
	}
}

// Mount routes every method and path under the prefix (default: all paths)
// to h.
func Mount(e *echo.Echo, h http.Handler, opts ...Option) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if o.prefix != "" {
		h = http.StripPrefix(o.prefix, h)
	}
	e.Any(o.prefix+"/*", echo.WrapHandler(h))
}

// New creates an Echo instance with h mounted and Echo's recover middleware
// installed.
func New(h http.Handler, opts ...Option) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	Mount(e, h, opts...)
	return e
}

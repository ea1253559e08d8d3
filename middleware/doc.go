// Package middleware provides the net/http middleware the server wraps around
// its router: request ids, one structured log line per request, panic
// recovery and Prometheus metrics.
//
// Each middleware has the shape func(http.Handler) http.Handler and can be
// composed with Chain:
//
//	h := middleware.Chain(router,
//	    middleware.RequestID(),
//	    middleware.Logger(logger),
//	    middleware.Recover(logger),
//	)
package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies mws to h so that the first middleware is the outermost.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

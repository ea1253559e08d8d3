// Package server wires the todo app together: it owns the record store and
// the counter for the life of the process, registers the route table and
// wraps it in the middleware stack.
package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pthm/hxtodo"
	"github.com/pthm/hxtodo/lib/encoding"
	"github.com/pthm/hxtodo/lib/store"
	"github.com/pthm/hxtodo/middleware"
)

// Addr is the address the server listens on.
const Addr = "127.0.0.1:8080"

// Server serves the todo app.
type Server struct {
	store   *store.Store
	counter *store.Counter
	enc     *hxtodo.Encoder
	router  *hxtodo.Router
	logger  *slog.Logger
	handler http.Handler
}

// Option configures a Server.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	key      []byte
	registry prometheus.Registerer
	counter  int64
}

// WithLogger sets the logger for request lines and failures.
// Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithKey sets the key used to sign ETags. If not provided, a random key is
// generated, so tags do not survive a restart.
func WithKey(key []byte) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithMetrics enables the Prometheus middleware, registering its collectors
// on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithCounter sets the counter's starting value.
func WithCounter(start int64) Option {
	return func(o *options) {
		o.counter = start
	}
}

// New creates a server around st. A nil store starts empty.
func New(st *store.Store, opts ...Option) (*Server, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	if st == nil {
		var err error
		if st, err = store.New(); err != nil {
			return nil, err
		}
	}

	key := o.key
	if key == nil {
		var err error
		if key, err = encoding.RandomKey(); err != nil {
			return nil, fmt.Errorf("server: generate key: %w", err)
		}
	}
	enc, err := hxtodo.NewEncoder(key)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	s := &Server{
		store:   st,
		counter: store.NewCounter(o.counter),
		enc:     enc,
		router:  hxtodo.NewRouter(hxtodo.WithLogger(o.logger)),
		logger:  o.logger,
	}
	s.routes()

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(o.logger),
	}
	if o.registry != nil {
		mws = append(mws, middleware.Metrics(middleware.WithRegistry(o.registry)))
	}
	mws = append(mws, middleware.Recover(o.logger))
	s.handler = middleware.Chain(s.router, mws...)

	return s, nil
}

// Handler returns the server's root handler, middleware included.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Router returns the bare route table.
func (s *Server) Router() *hxtodo.Router {
	return s.router
}

// Store returns the record store.
func (s *Server) Store() *store.Store {
	return s.store
}

// Counter returns the counter.
func (s *Server) Counter() *store.Counter {
	return s.counter
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	hxtodochi "github.com/pthm/hxtodo/adapters/chi"
	hxtodoecho "github.com/pthm/hxtodo/adapters/echo"
	"github.com/pthm/hxtodo/lib/store"
	"github.com/pthm/hxtodo/server"
	"github.com/spf13/cobra"
)

const (
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		flags      Config
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the server",
		Long: fmt.Sprintf(`Start the server on %s.

Flags override values from the config file.`, server.Addr),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			f := cmd.Flags()
			if f.Changed("log-level") {
				cfg.LogLevel = flags.LogLevel
			}
			if f.Changed("log-format") {
				cfg.LogFormat = flags.LogFormat
			}
			if f.Changed("transport") {
				cfg.Transport = flags.Transport
			}
			if f.Changed("metrics") {
				cfg.Metrics = flags.Metrics
			}
			if err := cfg.validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg, cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			h, err := buildHandler(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen: %w", err)
			}
			return run(ctx, ln, h, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().StringVar(&flags.LogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.LogFormat, "log-format", "text", "Log format (text, json)")
	cmd.Flags().StringVar(&flags.Transport, "transport", transportStd, "HTTP stack (std, echo, chi)")
	cmd.Flags().BoolVar(&flags.Metrics, "metrics", false, "Expose Prometheus metrics on "+metricsPath)

	return cmd
}

// buildHandler assembles the store, server and transport described by cfg.
func buildHandler(cfg Config, logger *slog.Logger) (http.Handler, error) {
	st, err := store.New(cfg.records()...)
	if err != nil {
		return nil, err
	}

	opts := []server.Option{server.WithLogger(logger)}

	var metrics http.Handler
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, server.WithMetrics(reg))
		metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	srv, err := server.New(st, opts...)
	if err != nil {
		return nil, err
	}
	app := srv.Handler()

	switch cfg.Transport {
	case transportEcho:
		e := hxtodoecho.New(app)
		if metrics != nil {
			e.GET(metricsPath, echo.WrapHandler(metrics))
		}
		return e, nil

	case transportChi:
		r := hxtodochi.New(app)
		if metrics != nil {
			r.Handle(metricsPath, metrics)
		}
		return r, nil

	default:
		if metrics == nil {
			return app, nil
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == metricsPath {
				metrics.ServeHTTP(w, r)
				return
			}
			app.ServeHTTP(w, r)
		}), nil
	}
}

// run serves h on ln until ctx is cancelled, then shuts down gracefully.
func run(ctx context.Context, ln net.Listener, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", ln.Addr().String())
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

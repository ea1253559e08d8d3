package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pthm/hxtodo"
)

// Logger logs one line per request once the response is written.
//
// Client errors, including the expected 400 conflict and 404 not-found
// outcomes, are logged at Info. Only 5xx responses are logged at Error.
func Logger(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			level := slog.LevelInfo
			if status >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			logger.LogAttrs(r.Context(), level, "request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int64("bytes", rec.written),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", GetRequestID(r.Context())),
				slog.Bool("htmx", hxtodo.IsHTMX(r)),
			)
		})
	}
}

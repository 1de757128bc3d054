package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Logger logs one line per HTTP request with the matched route pattern
func Logger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := statusOf(ww)
			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"route", routePattern(r),
				"status", status,
				"bytes", ww.BytesWritten(),
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", r.RemoteAddr,
			}
			if reqID := chimiddleware.GetReqID(r.Context()); reqID != "" {
				attrs = append(attrs, "request_id", reqID)
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("http request", attrs...)
			case status >= http.StatusBadRequest:
				logger.Warn("http request", attrs...)
			default:
				logger.Info("http request", attrs...)
			}
		})
	}
}

// statusOf returns the written status, defaulting to 200 when the handler
// never called WriteHeader
func statusOf(ww chimiddleware.WrapResponseWriter) int {
	if ww.Status() == 0 {
		return http.StatusOK
	}
	return ww.Status()
}

// routePattern returns the chi route template so that path parameters do not
// explode label cardinality. Unmatched requests report "unmatched".
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}
	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}
	return "unmatched"
}

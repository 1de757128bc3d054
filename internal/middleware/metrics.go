package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestObserver records the outcome of an HTTP request
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics reports every request to the observer, labelled by route pattern
func Metrics(observer RequestObserver) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			observer.ObserveRequest(r.Method, routePattern(r), statusOf(ww), time.Since(start))
		})
	}
}

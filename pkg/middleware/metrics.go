package middleware

import (
	"net/http"
	"time"

	"backstage-api/pkg/metrics"
)

// Metrics records request counts and latency by route pattern.
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := wrapResponseWriter(w)

			metrics.RequestStarted()
			defer metrics.RequestFinished()

			next.ServeHTTP(rw, r)

			metrics.ObserveRequest(r.Method, routePattern(r), rw.statusCode, time.Since(start).Seconds())
		})
	}
}

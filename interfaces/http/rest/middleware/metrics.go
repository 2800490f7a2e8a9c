package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"shoplist-backend/pkg/observability"
)

// RequestMetrics records a count and latency datum for every request. A
// metrics instance with publishing disabled turns this into a pass-through.
func RequestMetrics(metrics *observability.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			dimensions := map[string]string{
				"Method": r.Method,
				"Path":   r.URL.Path,
				"Status": strconv.Itoa(ww.Status()),
			}
			metrics.IncrementCounter(r.Context(), "RequestCount", dimensions)
			metrics.RecordDuration(r.Context(), "RequestLatency", time.Since(start), dimensions)
		})
	}
}

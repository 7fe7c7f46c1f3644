package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/xm-division/ATC-BookingService/pkg/metrics"
)

// Metrics records request counts and latencies per route template.
type Metrics struct {
	collector *metrics.Metrics
}

// NewMetrics builds the metrics middleware.
func NewMetrics(collector *metrics.Metrics) *Metrics {
	return &Metrics{collector: collector}
}

// Handle wraps next with request observation. The route template keeps the
// path label cardinality bounded.
func (m *Metrics) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if template, err := route.GetPathTemplate(); err == nil {
				path = template
			}
		}

		m.collector.ObserveHTTPRequest(r.Method, path, rec.status, time.Since(start))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

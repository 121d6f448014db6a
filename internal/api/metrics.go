package api

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mercalist_http_requests_total",
		Help: "Total number of HTTP requests by method, path pattern and status code.",
	}, []string{"method", "path", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mercalist_http_request_duration_seconds",
		Help:    "HTTP request latency by method and path pattern.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps the mux and records request counts and latencies. The
// registered route pattern is used as the path label so that ids do not blow
// up the label cardinality.
func instrument(next *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		timer := prometheus.NewTimer(prometheus.ObserverFunc(func(seconds float64) {
			_, pattern := next.Handler(r)
			if pattern == "" {
				pattern = "unmatched"
			}
			requestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(rec.status)).Inc()
			requestDuration.WithLabelValues(r.Method, pattern).Observe(seconds)
		}))
		defer timer.ObserveDuration()

		next.ServeHTTP(rec, r)
	})
}

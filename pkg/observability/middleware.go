package observability

import (
	"net/http"
	"strconv"
	"time"
)

// routeLabel normalizes a request path to a bounded set of values so the
// metrics stay low-cardinality even when clients probe arbitrary paths.
func routeLabel(path string) string {
	switch path {
	case "/", "/health", "/metrics", "/api/recommend":
		return path
	default:
		return "other"
	}
}

// MetricsMiddleware wraps an HTTP handler to record request metrics.
//
// It captures:
//   - moodreel_requests_total (counter): incremented per request with method, status class, and route labels
//   - moodreel_request_duration_seconds (histogram): request duration with method and route labels
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		route := routeLabel(r.URL.Path)
		RequestsTotal.WithLabelValues(r.Method, statusClass(rec.status), route).Inc()
		RequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// statusClass collapses a status code into a "2xx"/"4xx"/"5xx" label.
// A handler that never calls WriteHeader implicitly responded 200.
func statusClass(status int) string {
	if status == 0 {
		status = http.StatusOK
	}
	return strconv.Itoa(status/100) + "xx"
}

// statusRecorder captures the response status for metric labels.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

// Flush delegates to the underlying writer if it implements http.Flusher.
func (r *statusRecorder) Flush() {
	if f, ok := r.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// Unwrap returns the underlying ResponseWriter for http.ResponseController.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

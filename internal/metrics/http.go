package metrics

import (
	"net/http"
	"regexp"
	"strconv"
	"time"
)

// slugPattern matches trailing slug or numeric id path segments under the
// catalog routes so per-entity paths collapse into one series.
var slugPattern = regexp.MustCompile(`^(/api/(?:jobs|projects|services|service-details)/)[^/]+`)

// similarPattern collapses the category segment of the similar routes.
var similarPattern = regexp.MustCompile(`(/similar/)[^/]+$`)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.wroteHeader {
		rw.wroteHeader = true
	}
	return rw.ResponseWriter.Write(b)
}

// Unwrap returns the underlying ResponseWriter for middleware compatibility.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath replaces entity slugs with {slug} to limit cardinality.
func normalizePath(path string) string {
	// keep the static sub-routes distinguishable
	if path == "/api/projects/featured" || path == "/api/jobs/apply" {
		return path
	}
	normalized := slugPattern.ReplaceAllString(path, "${1}{slug}")
	return similarPattern.ReplaceAllString(normalized, "${1}{category}")
}

// Middleware records HTTP request metrics.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Skip the metrics endpoint to avoid recursion
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		start := time.Now()
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)
		method := r.Method
		statusCode := strconv.Itoa(rw.statusCode)

		HTTPRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
		HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
	})
}

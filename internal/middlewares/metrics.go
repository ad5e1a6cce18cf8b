package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "site_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware records request counts and durations per endpoint
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			path := normalizePath(r.URL.Path)

			ww := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.statusCode)

			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *metricsResponseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// normalizePath collapses variable path segments so metric label
// cardinality stays bounded
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/upload/"):
		return "/api/upload/{category}"
	case strings.HasPrefix(path, "/swagger/"):
		return "/swagger/*"
	case strings.HasPrefix(path, "/photos/"),
		strings.HasPrefix(path, "/videos/"),
		strings.HasPrefix(path, "/audio/"),
		strings.HasPrefix(path, "/documents/"):
		return "/" + strings.SplitN(path[1:], "/", 2)[0] + "/*"
	}

	switch path {
	case "/", "/api/media", "/api/geo", "/metrics":
		return path
	}

	// Anything else is scanner noise or a typo; one bucket keeps label
	// cardinality bounded
	return "/other"
}

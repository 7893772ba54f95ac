package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openassets",
			Subsystem: "api",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "openassets",
			Subsystem: "api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "openassets",
			Subsystem: "api",
			Name:      "http_errors_total",
			Help:      "Total number of HTTP errors (status >= 500)",
		},
		[]string{"method", "path", "status"},
	)
)

// HTTPMiddleware returns Echo middleware for HTTP metrics collection
func HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			method := c.Request().Method
			// route pattern, not the raw URL, so addresses don't become label values
			path := normalizePath(c.Path())

			err := next(c)
			if err != nil {
				// let echo write the response so the recorded status is final
				c.Error(err)
			}

			status := c.Response().Status
			statusText := strconv.Itoa(status)
			httpRequestsTotal.WithLabelValues(method, path, statusText).Inc()
			httpRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
			if status >= 500 {
				httpErrorsTotal.WithLabelValues(method, path, statusText).Inc()
			}
			return nil
		}
	}
}

func normalizePath(path string) string {
	if path == "" {
		return "unknown"
	}
	return path
}

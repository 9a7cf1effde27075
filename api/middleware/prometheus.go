package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status", "service"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "service"},
	)

	verificationTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_operations_total",
			Help: "Total number of verification code operations",
		},
		[]string{"operation", "result"},
	)

	postUploadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_uploads_total",
			Help: "Total number of post upload attempts",
		},
		[]string{"status"},
	)
)

func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			path,
			status,
			serviceName,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			path,
			serviceName,
		).Observe(duration)
	}
}

// RecordVerification учитывает выдачи и проверки кодов (operation: issue/check)
func RecordVerification(operation, result string) {
	verificationTotal.WithLabelValues(operation, result).Inc()
}

func RecordUpload(status string) {
	postUploadsTotal.WithLabelValues(status).Inc()
}

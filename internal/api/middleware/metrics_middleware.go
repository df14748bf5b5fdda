package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// requestDuration tracks request duration in seconds
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// requestTotal tracks total number of requests
	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// responseSize tracks response size in bytes
	responseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses in bytes",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	// datasetRecords reports how many records each dataset loaded with.
	datasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_records_loaded",
			Help: "Number of records loaded per dataset",
		},
		[]string{"dataset"},
	)

	// assistantRequests counts assistant questions by outcome.
	assistantRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "assistant_requests_total",
			Help: "Total number of assistant questions by outcome",
		},
		[]string{"outcome"},
	)
)

// SetDatasetRecords records the loaded size of a dataset.
func SetDatasetRecords(dataset string, count int) {
	datasetRecords.WithLabelValues(dataset).Set(float64(count))
}

// CountAssistantRequest increments the assistant outcome counter.
func CountAssistantRequest(outcome string) {
	assistantRequests.WithLabelValues(outcome).Inc()
}

// MetricsMiddleware collects metrics for HTTP requests
type MetricsMiddleware struct{}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// CollectMetrics collects metrics for HTTP requests
func (m *MetricsMiddleware) CollectMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		requestDuration.WithLabelValues(method, path, status).Observe(duration)
		requestTotal.WithLabelValues(method, path, status).Inc()

		if c.Writer.Size() > 0 {
			responseSize.WithLabelValues(method, path).Observe(float64(c.Writer.Size()))
		}
	}
}

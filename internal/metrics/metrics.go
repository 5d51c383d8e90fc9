// Package metrics provides Prometheus metrics collection for the feeding service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// FeedingCalculationsTotal counts feeding plan calculations by stage and outcome.
	FeedingCalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feeding_calculations_total",
			Help: "Total number of feeding plan calculations",
		},
		[]string{"stage", "status"},
	)

	// FeedingCalculationDuration tracks how long a feeding plan takes to compute.
	FeedingCalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feeding_calculation_duration_seconds",
			Help:    "Feeding plan calculation duration in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
		[]string{"stage"},
	)

	// FeedingTargetsSavedTotal counts persisted daily targets by stage.
	FeedingTargetsSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feeding_targets_saved_total",
			Help: "Total number of daily feeding targets saved",
		},
		[]string{"stage"},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)

	// CircuitBreakerState exposes the breaker state per name: 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordFeedingCalculation records metrics for a feeding plan calculation.
func RecordFeedingCalculation(stage string, duration time.Duration, status string) {
	FeedingCalculationDuration.WithLabelValues(stage).Observe(duration.Seconds())
	FeedingCalculationsTotal.WithLabelValues(stage, status).Inc()
}

// RecordFeedingTargetSaved counts a persisted daily target.
func RecordFeedingTargetSaved(stage string) {
	FeedingTargetsSavedTotal.WithLabelValues(stage).Inc()
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}

// SetCircuitBreakerState publishes the numeric state of the named breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

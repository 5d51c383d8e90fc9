// Package cache declares the cache contract used by the feeding calculator.
package cache

import "github.com/guttosm/feeding-service/internal/nutrition"

// Cache stores computed plans keyed by their canonical input.
type Cache interface {
	Get(key string) (nutrition.Plan, bool)
	Set(key string, value nutrition.Plan)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}

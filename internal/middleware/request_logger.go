package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/model"
	"github.com/guttosm/feeding-service/internal/logger"
	"github.com/guttosm/feeding-service/internal/service"
)

// RequestLogger returns a middleware that writes one structured line per request
// and, when loggingService is set, persists the same entry for later querying.
func RequestLogger(loggingService service.LoggingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := GetRequestID(c)

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		log := logger.Logger().With().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status_code", statusCode).
			Int64("duration_ms", latency.Milliseconds()).
			Str("ip", c.ClientIP()).
			Logger()

		level := getLogLevel(statusCode)
		switch level {
		case "error":
			log.Error().Msg("HTTP request")
		case "warn":
			log.Warn().Msg("HTTP request")
		default:
			log.Info().Msg("HTTP request")
		}

		if loggingService == nil {
			return
		}

		entry := &model.LogEntry{
			Timestamp:  start,
			Level:      level,
			Message:    "HTTP request",
			RequestID:  requestID,
			Method:     c.Request.Method,
			Path:       c.Request.URL.Path,
			StatusCode: statusCode,
			Duration:   latency.Milliseconds(),
			IP:         c.ClientIP(),
			UserAgent:  c.Request.UserAgent(),
		}
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.String()
		}
		fillUser(c, entry)

		persistLogEntry(loggingService, entry)
	}
}

func getLogLevel(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "error"
	case statusCode >= 400:
		return "warn"
	default:
		return "info"
	}
}

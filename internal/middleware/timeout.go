package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/domain/dto"
	"github.com/guttosm/feeding-service/internal/i18n"
)

// TimeoutConfig holds configuration for the timeout middleware.
type TimeoutConfig struct {
	// Timeout is the deadline attached to each request context.
	Timeout time.Duration
}

// DefaultTimeoutConfig returns the default request deadline.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{Timeout: 10 * time.Second}
}

// Timeout attaches a deadline to the request context. Handlers and the
// repositories below them observe it through ctx; if the deadline passed and
// nothing was written, the middleware answers 504.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	if cfg.Timeout <= 0 {
		cfg = DefaultTimeoutConfig()
	}

	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if c.Writer.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return
		}

		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		errorResp := dto.NewError(dto.ErrCodeTimeout, message).
			WithRequestID(GetRequestID(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout, errorResp)
	}
}

// TimeoutWithDuration is Timeout with only the duration set.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	return Timeout(TimeoutConfig{Timeout: timeout})
}

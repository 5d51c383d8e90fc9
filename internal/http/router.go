package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/metrics"
	"github.com/guttosm/feeding-service/internal/middleware"
	"github.com/guttosm/feeding-service/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit  int
	RateWindow time.Duration
	// APIKeys are accepted when EnableAuth is set and no JWT secret is configured.
	APIKeys    map[string]bool
	EnableAuth bool
	// JWTSecret enables bearer token auth. It takes precedence over API keys.
	JWTSecret   string
	JWTIssuer   string
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string

	RequestTimeout    time.Duration
	EnableIdempotency bool
	IdempotencyTTL    time.Duration

	TargetsCacheSize int
	TargetsCacheTTL  time.Duration

	LoggingService        service.LoggingService
	FeedingTargetsService service.FeedingTargetsService
	Calculator            service.FeedingCalculator
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:         100,
		RateWindow:        time.Minute,
		EnableAuth:        false,
		RequestTimeout:    middleware.DefaultTimeoutConfig().Timeout,
		EnableIdempotency: true,
		IdempotencyTTL:    middleware.DefaultIdempotencyConfig().TTL,
		TargetsCacheSize:  defaultTargetsCacheSize,
		TargetsCacheTTL:   defaultTargetsCacheTTL,
	}
}

func (cfg *RouterConfig) idempotencyConfig() middleware.IdempotencyConfig {
	idem := middleware.DefaultIdempotencyConfig()
	if cfg.IdempotencyTTL > 0 {
		idem.TTL = cfg.IdempotencyTTL
	}
	return idem
}

// NewRouter creates and configures the Gin router for the feeding service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Configure global middleware
	configureGlobalMiddleware(router, &cfg)

	// Register infrastructure routes (health, metrics, swagger)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	// Configure API routes
	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	if cfg.Calculator != nil {
		NewFeedingRoutes(&cfg).RegisterRoutes(api, &cfg)
	}

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	timeoutCfg := middleware.DefaultTimeoutConfig()
	if cfg.RequestTimeout > 0 {
		timeoutCfg.Timeout = cfg.RequestTimeout
	}

	// Core middleware stack
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(cfg.LoggingService),
		middleware.ErrorHandler(),
		middleware.Timeout(timeoutCfg),
	)

	// Global rate limiting
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up authentication for the API group.
// Authenticated callers are additionally limited per user.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	switch {
	case cfg.JWTSecret != "":
		api.Use(middleware.JWTAuth(middleware.JWTConfig{
			Secret: []byte(cfg.JWTSecret),
			Issuer: cfg.JWTIssuer,
		}))
	case cfg.EnableAuth && len(cfg.APIKeys) > 0:
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	default:
		return
	}

	if cfg.RateLimit > 0 {
		userLimiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		api.Use(userLimiter.UserRateLimit())
	}
}

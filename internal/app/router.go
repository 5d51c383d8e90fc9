// Package app provides router configuration.
package app

import (
	"context"

	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/http"
	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/guttosm/feeding-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes the health handler and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var targetsRepo repository.FeedingTargetsRepositoryInterface
	var loggingService service.LoggingService
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		targetsRepo = dbComponents.FeedingTargetsRepo
		loggingService = dbComponents.LoggingService

		// Register circuit breakers and the connection for health monitoring
		healthHandler.RegisterCircuitBreaker(FeedingTargetsCircuitBreaker, dbComponents.FeedingTargetsCircuitBreaker)
		healthHandler.RegisterCircuitBreaker(LogsCircuitBreaker, dbComponents.LogsCircuitBreaker)
		if db := dbComponents.DB; db != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
	}

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	if cfg.Server.RequestTimeout > 0 {
		routerCfg.RequestTimeout = cfg.Server.RequestTimeout
	}
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.JWTSecret = cfg.Auth.JWTSecretKey
	routerCfg.JWTIssuer = cfg.Auth.JWTIssuer
	routerCfg.TargetsCacheSize = cfg.Cache.TargetsSize
	routerCfg.TargetsCacheTTL = cfg.Cache.TargetsTTL
	routerCfg.LoggingService = loggingService
	// Without a repository the service answers ErrRepositoryNotConfigured, surfaced as 503.
	routerCfg.FeedingTargetsService = service.NewFeedingTargetsService(targetsRepo)
	if services != nil {
		routerCfg.Calculator = services.Calculator
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

package http

import (
	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/internal/middleware"
)

// FeedingRoutes registers the calculation and feeding target routes.
type FeedingRoutes struct {
	handler        *Handler
	targetsHandler *FeedingTargetsHandler
}

var _ RouteGroup = (*FeedingRoutes)(nil)

// NewFeedingRoutes builds the handlers behind the feeding routes from the router config.
func NewFeedingRoutes(cfg *RouterConfig) *FeedingRoutes {
	return &FeedingRoutes{
		handler: NewHandler(cfg.Calculator, cfg.LoggingService),
		targetsHandler: NewFeedingTargetsHandler(cfg.Calculator, cfg.FeedingTargetsService, cfg.LoggingService,
			WithActiveTargetCache(cfg.TargetsCacheSize, cfg.TargetsCacheTTL)),
	}
}

// RegisterRoutes registers /feeding and /dogs routes on rg.
func (r *FeedingRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	feeding := rg.Group("/feeding")
	{
		feeding.POST("/adult", r.handler.CalculateAdult)
		feeding.POST("/puppy", r.handler.CalculatePuppy)
		feeding.POST("/plan", r.handler.CalculatePlan)
		feeding.GET("/rer", r.handler.GetRER)
		feeding.GET("/age", r.handler.GetAge)
		feeding.GET("/meals", r.handler.GetMeals)
	}

	save := []gin.HandlerFunc{r.targetsHandler.SaveFeedingTarget}
	if cfg.EnableIdempotency {
		save = append([]gin.HandlerFunc{middleware.Idempotency(cfg.idempotencyConfig())}, save...)
	}

	dogs := rg.Group("/dogs/:dog_id")
	{
		dogs.PUT("/feeding-target", save...)
		dogs.GET("/feeding-target", r.targetsHandler.GetFeedingTarget)
		dogs.GET("/feeding-target/history", r.targetsHandler.ListFeedingTargets)
	}
}

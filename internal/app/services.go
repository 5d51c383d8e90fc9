// Package app provides service initialization.
package app

import (
	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator *service.FeedingCalculatorService
}

// InitializeServices initializes business logic services.
func InitializeServices(cfg config.Config) *ServiceComponents {
	var opts []service.Option

	if cfg.Feeding.PuppyMaxAgeMonths > 0 {
		opts = append(opts, service.WithPuppyAgeLimit(cfg.Feeding.PuppyMaxAgeMonths))
	}

	if cfg.Cache.Size > 0 {
		opts = append(opts, service.WithCache(cfg.Cache.Size, cfg.Cache.TTL))
	}

	return &ServiceComponents{
		Calculator: service.NewFeedingCalculatorService(opts...),
	}
}

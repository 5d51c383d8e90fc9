// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/circuitbreaker"
	"github.com/guttosm/feeding-service/internal/logger"
	"github.com/guttosm/feeding-service/internal/repository"
	"github.com/guttosm/feeding-service/internal/service"
)

// Circuit breaker names, also used as readiness check labels.
const (
	FeedingTargetsCircuitBreaker = "mongodb_feeding_targets"
	LogsCircuitBreaker           = "mongodb_logs"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                           *repository.MongoDB
	FeedingTargetsRepo           repository.FeedingTargetsRepositoryInterface
	LoggingService               service.LoggingService
	FeedingTargetsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker           *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails; the calculation routes keep working
// and the feeding target routes answer 503.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	log := logger.WithContext(map[string]interface{}{"component": "mongodb", "database": cfg.DatabaseName})

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.SetLogsTTL(ctx, cfg.LogsTTL); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index")
	}

	return newDatabaseComponents(db, cfg)
}

func newDatabaseComponents(db *repository.MongoDB, cfg config.DatabaseConfig) *DatabaseComponents {
	// A dog without a target is a normal answer, not a database failure.
	targetsCB := circuitbreaker.New(breakerConfig(cfg, FeedingTargetsCircuitBreaker, repository.IsExpectedError))
	logsCB := circuitbreaker.New(breakerConfig(cfg, LogsCircuitBreaker, nil))

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	targetsRepo := repository.NewFeedingTargetsRepositoryWithCircuitBreaker(repository.NewFeedingTargetsRepository(db), targetsCB)

	return &DatabaseComponents{
		DB:                           db,
		FeedingTargetsRepo:           targetsRepo,
		LoggingService:               service.NewLoggingService(logsRepo),
		FeedingTargetsCircuitBreaker: targetsCB,
		LogsCircuitBreaker:           logsCB,
	}
}

func breakerConfig(cfg config.DatabaseConfig, name string, isExpected func(error) bool) circuitbreaker.Config {
	cbCfg := circuitbreaker.DefaultConfig()
	cbCfg.Name = name
	cbCfg.IsExpected = isExpected
	if cfg.CircuitBreakerFailureThreshold > 0 {
		cbCfg.FailureThreshold = cfg.CircuitBreakerFailureThreshold
	}
	if cfg.CircuitBreakerSuccessThreshold > 0 {
		cbCfg.SuccessThreshold = cfg.CircuitBreakerSuccessThreshold
	}
	if cfg.CircuitBreakerTimeout > 0 {
		cbCfg.Timeout = cfg.CircuitBreakerTimeout
	}
	return cbCfg
}

// Package app provides application initialization and dependency injection.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/http"
	"github.com/guttosm/feeding-service/internal/middleware"
)

// App is the wired application: the router plus the resources released on shutdown.
type App struct {
	Router *gin.Engine

	services *ServiceComponents
	database *DatabaseComponents
}

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *App {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Log)

	// Initialize business services
	serviceComponents := InitializeServices(cfg)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database)

	// Audit entries are written by a bounded worker pool
	if dbComponents != nil {
		middleware.InitAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	// Initialize router components (health handler and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		services: serviceComponents,
		database: dbComponents,
	}
}

// Close drains the audit log workers, stops the plan cache and disconnects MongoDB.
func (a *App) Close(ctx context.Context) error {
	middleware.StopAsyncLogger()
	if a.services != nil && a.services.Calculator != nil {
		a.services.Calculator.Stop()
	}
	if a.database != nil && a.database.DB != nil {
		if err := a.database.DB.Close(ctx); err != nil {
			return fmt.Errorf("close mongodb: %w", err)
		}
	}
	return nil
}

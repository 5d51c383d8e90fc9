// Package main is the entry point for the feeding-service application.
//
// @title           Feeding Service API
// @version         1.0.0
// @description     Daily calorie and food portion targets for dogs.
//
//	Computes the resting energy requirement, the daily kcal target and grams of food
//	for adult dogs and puppies, and stores the active target per dog.
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/feeding-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 "Bearer <token>" issued by the app's auth provider. Required when JWT_SECRET_KEY is set.
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for service-to-service calls. Required if AUTH_ENABLED is set without a JWT secret.
//
// @tag.name        Feeding
// @tag.description Stateless feeding calculations
//
// @tag.name        Feeding targets
// @tag.description Stored daily targets per dog
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/guttosm/feeding-service/docs" // swagger docs

	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)
	server.OnShutdown(application.Close)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/feeding-service/config"
	"github.com/guttosm/feeding-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the LOG_LEVEL and LOG_PRETTY settings.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}

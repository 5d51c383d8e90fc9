// Package config provides configuration management for the feeding service.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Cache    CacheConfig
	Feeding  FeedingConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port           string
	RateLimit      int
	RateWindow     time.Duration
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	RequestTimeout time.Duration
}

// CacheConfig holds cache configuration.
type CacheConfig struct {
	// Size and TTL bound the calculator's plan cache.
	Size int
	TTL  time.Duration
	// TargetsSize and TargetsTTL bound the active feeding target cache. A negative size disables it.
	TargetsSize int
	TargetsTTL  time.Duration
}

// FeedingConfig holds the nutrition defaults.
type FeedingConfig struct {
	// PuppyMaxAgeMonths is the age from which a dog is planned as an adult.
	PuppyMaxAgeMonths int
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled bool
	// APIKeys holds plain keys or bcrypt hashes.
	APIKeys map[string]bool
	// JWTSecretKey verifies HS256 tokens issued by the app's auth provider.
	// Bearer auth is on whenever it is set.
	JWTSecretKey string
	JWTIssuer    string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RateLimit:      getEnvInt("RATE_LIMIT", 100),
			RateWindow:     getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins:    parseList(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:    getEnv("SWAGGER_USER", ""),
			SwaggerPass:    getEnv("SWAGGER_PASS", ""),
			RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		},
		Cache: CacheConfig{
			Size:        getEnvInt("CACHE_SIZE", 1000),
			TTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
			TargetsSize: getEnvInt("TARGETS_CACHE_SIZE", 1024),
			TargetsTTL:  getEnvDuration("TARGETS_CACHE_TTL", 30*time.Second),
		},
		Feeding: FeedingConfig{
			PuppyMaxAgeMonths: getEnvInt("PUPPY_MAX_AGE_MONTHS", 12),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
			JWTIssuer:    getEnv("JWT_ISSUER", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "feeding_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

// Validate reports settings that would leave the service misconfigured.
func (c Config) Validate() error {
	var errs []error
	if c.Auth.Enabled && len(c.Auth.APIKeys) == 0 && c.Auth.JWTSecretKey == "" {
		errs = append(errs, errors.New("AUTH_ENABLED requires API_KEYS or JWT_SECRET_KEY"))
	}
	if c.Feeding.PuppyMaxAgeMonths <= 0 {
		errs = append(errs, errors.New("PUPPY_MAX_AGE_MONTHS must be positive"))
	}
	if c.Server.RequestTimeout <= 0 {
		errs = append(errs, errors.New("REQUEST_TIMEOUT must be positive"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	keys := parseList(s)
	if keys == nil {
		return nil
	}
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		result[k] = true
	}
	return result
}

// parseList splits a comma separated value, dropping blanks. Empty input yields nil.
func parseList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			result = append(result, v)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

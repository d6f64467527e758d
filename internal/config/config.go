// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// ErrConfiguration is wrapped by every error returned from Load.
var ErrConfiguration = errors.New("configuration error")

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Provider ProviderConfig
	Cache    CacheConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// ProviderConfig holds flight-data provider credentials and transport settings.
type ProviderConfig struct {
	APIKey       string        `env:"AMADEUS_API_KEY"`
	APISecret    string        `env:"AMADEUS_API_SECRET"`
	BaseURL      string        `env:"AMADEUS_BASE_URL" envDefault:"https://test.api.amadeus.com"`
	Timeout      time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"15s"`
	RateLimitRPS float64       `env:"PROVIDER_RATE_LIMIT_RPS" envDefault:"10"`
	MaxAttempts  int           `env:"PROVIDER_MAX_ATTEMPTS" envDefault:"1"`
}

// CacheConfig holds airport cache settings. Redis is used only when RedisAddr is set.
type CacheConfig struct {
	BatchConcurrency int    `env:"AIRPORT_BATCH_CONCURRENCY" envDefault:"4"`
	RedisAddr        string `env:"REDIS_ADDR"`
	RedisPassword    string `env:"REDIS_PASSWORD"`
	RedisDB          int    `env:"REDIS_DB" envDefault:"0"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrConfiguration, err)
	}

	cfg.Provider.APIKey = strings.TrimSpace(cfg.Provider.APIKey)
	cfg.Provider.APISecret = strings.TrimSpace(cfg.Provider.APISecret)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Provider.APIKey == "" || cfg.Provider.APISecret == "" {
		return errors.New("missing Amadeus credentials: set AMADEUS_API_KEY and AMADEUS_API_SECRET")
	}
	if !strings.HasPrefix(cfg.Provider.BaseURL, "http://") && !strings.HasPrefix(cfg.Provider.BaseURL, "https://") {
		return fmt.Errorf("AMADEUS_BASE_URL must be an http(s) URL, got %q", cfg.Provider.BaseURL)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if cfg.Provider.Timeout <= 0 {
		return fmt.Errorf("PROVIDER_TIMEOUT must be positive")
	}
	if cfg.Provider.RateLimitRPS <= 0 {
		return fmt.Errorf("PROVIDER_RATE_LIMIT_RPS must be positive, got %g", cfg.Provider.RateLimitRPS)
	}
	if cfg.Provider.MaxAttempts < 1 || cfg.Provider.MaxAttempts > 5 {
		return fmt.Errorf("PROVIDER_MAX_ATTEMPTS must be between 1 and 5, got %d", cfg.Provider.MaxAttempts)
	}

	if cfg.Cache.BatchConcurrency < 1 {
		return fmt.Errorf("AIRPORT_BATCH_CONCURRENCY must be at least 1, got %d", cfg.Cache.BatchConcurrency)
	}
	if cfg.Cache.RedisDB < 0 {
		return fmt.Errorf("REDIS_DB must not be negative, got %d", cfg.Cache.RedisDB)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// RedisEnabled reports whether the shared airport cache tier is configured.
func (c *Config) RedisEnabled() bool {
	return strings.TrimSpace(c.Cache.RedisAddr) != ""
}

// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upstream UpstreamConfig
	Cache    CacheConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
}

// UpstreamConfig holds settings for the hotel data supplier.
type UpstreamConfig struct {
	// PriceJobURL is the endpoint for the asynchronous price search job.
	PriceJobURL string `env:"UPSTREAM_PRICE_JOB_URL,required"`

	// StaticInfoURL is the endpoint for hotel static content.
	StaticInfoURL string `env:"UPSTREAM_STATIC_INFO_URL,required"`

	// PartnerID is attached to every upstream call and to cache keys.
	PartnerID string `env:"UPSTREAM_PARTNER_ID,required"`

	// RequestTimeout bounds a single upstream HTTP request.
	RequestTimeout time.Duration `env:"UPSTREAM_REQUEST_TIMEOUT" envDefault:"5s"`

	// PollInterval is the delay between price job polls.
	PollInterval time.Duration `env:"UPSTREAM_POLL_INTERVAL" envDefault:"500ms"`

	// PollMaxAttempts caps how many times an incomplete job is polled.
	PollMaxAttempts int `env:"UPSTREAM_POLL_MAX_ATTEMPTS" envDefault:"10"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	TTL time.Duration `env:"CACHE_TTL" envDefault:"10m"`
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
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
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
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	// Validate upstream endpoints are absolute URLs
	if err := validateURL("UPSTREAM_PRICE_JOB_URL", cfg.Upstream.PriceJobURL); err != nil {
		return err
	}
	if err := validateURL("UPSTREAM_STATIC_INFO_URL", cfg.Upstream.StaticInfoURL); err != nil {
		return err
	}

	// Validate polling budget
	if cfg.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("UPSTREAM_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Upstream.PollInterval <= 0 {
		return fmt.Errorf("UPSTREAM_POLL_INTERVAL must be positive")
	}
	if cfg.Upstream.PollMaxAttempts < 1 {
		return fmt.Errorf("UPSTREAM_POLL_MAX_ATTEMPTS must be at least 1, got %d", cfg.Upstream.PollMaxAttempts)
	}

	// Validate cache TTL
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// validateURL checks that a configured endpoint is an absolute http(s) URL.
func validateURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, raw)
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

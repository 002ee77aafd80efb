// Package config provides configuration management for the service.
// Configuration is env-first with an optional YAML file overlay, and can
// be hot reloaded in development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment identifies the deployment environment.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// Server holds HTTP server configuration.
type Server struct {
	Address         string        `yaml:"address"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Database holds backing-store configuration.
type Database struct {
	// Path is the analytical store location; ":memory:" for ephemeral.
	Path string `yaml:"path"`
}

// Observability holds metrics and tracing configuration.
type Observability struct {
	MetricsNamespace string  `yaml:"metrics_namespace"`
	TracingEnabled   bool    `yaml:"tracing_enabled"`
	TracingEndpoint  string  `yaml:"tracing_endpoint"`
	TracingSample    float64 `yaml:"tracing_sample"`
}

// Config holds all application configuration.
type Config struct {
	Environment   Environment   `yaml:"environment"`
	LogLevel      string        `yaml:"log_level"`
	ConfigFile    string        `yaml:"-"`
	Server        Server        `yaml:"server"`
	Database      Database      `yaml:"database"`
	Observability Observability `yaml:"observability"`
	CORSOrigins   []string      `yaml:"cors_origins"`
}

// LoadConfig loads configuration from environment variables and, when
// CONFIG_FILE is set, overlays the YAML file on top of the env defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment: Environment(getEnv("ENVIRONMENT", string(Development))),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		ConfigFile:  getEnv("CONFIG_FILE", ""),
		Server: Server{
			Address:         getEnv("SERVER_ADDRESS", ":8080"),
			ReadTimeout:     getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:     getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getEnvDuration("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Database: Database{
			Path: getEnv("DATABASE_PATH", "seograph.db"),
		},
		Observability: Observability{
			MetricsNamespace: getEnv("METRICS_NAMESPACE", "seograph"),
			TracingEnabled:   getEnvBool("ENABLE_TRACING", false),
			TracingEndpoint:  getEnv("TRACING_ENDPOINT", "localhost:4317"),
			TracingSample:    getEnvFloat("TRACING_SAMPLE", 0.1),
		},
		CORSOrigins: []string{getEnv("CORS_ORIGIN", "http://localhost:3000")},
	}

	if cfg.ConfigFile != "" {
		if err := overlayFile(cfg, cfg.ConfigFile); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", cfg.ConfigFile, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Staging, Production:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if c.Server.Address == "" {
		return fmt.Errorf("server address is required")
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}
	if c.Observability.TracingSample < 0 || c.Observability.TracingSample > 1 {
		return fmt.Errorf("tracing sample must be in [0,1], got %v", c.Observability.TracingSample)
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == Development
}

// Helper functions for environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

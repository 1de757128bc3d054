package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
// Following 12-factor app principles, config is loaded from environment variables.
// An optional YAML file named by CONFIG_FILE supplies defaults underneath them.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Auth     AuthConfig    `yaml:"auth"`
	CORS     CORSConfig    `yaml:"cors"`
	Session  SessionConfig `yaml:"session"`
	Metrics  MetricsConfig `yaml:"metrics"`
	LogLevel string        `yaml:"log_level"`
}

type ServerConfig struct {
	Port            string `yaml:"port"`
	Host            string `yaml:"host"`
	ReadTimeout     int    `yaml:"read_timeout"`
	WriteTimeout    int    `yaml:"write_timeout"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"`
}

type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"` // Valid API keys for authentication
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SessionConfig controls how long idle shopping sessions are kept.
// Both values are in seconds.
type SessionConfig struct {
	TTL           int `yaml:"ttl"`
	SweepInterval int `yaml:"sweep_interval"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// SessionTTL returns the idle session lifetime as a duration
func (c SessionConfig) SessionTTL() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// Interval returns the sweep period as a duration
func (c SessionConfig) Interval() time.Duration {
	return time.Duration(c.SweepInterval) * time.Second
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "8080",
			Host:            "0.0.0.0",
			ReadTimeout:     15,
			WriteTimeout:    15,
			ShutdownTimeout: 30,
		},
		Auth: AuthConfig{
			APIKeys: []string{"apitest"},
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Session: SessionConfig{
			TTL:           3600,
			SweepInterval: 60,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		LogLevel: "info",
	}
}

// Load reads configuration from the optional CONFIG_FILE and environment variables
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFile overlays values from a YAML file onto c
func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return fmt.Errorf("failed to decode config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Server.Port = getEnv("PORT", c.Server.Port)
	c.Server.Host = getEnv("HOST", c.Server.Host)
	c.Server.ReadTimeout = getEnvAsInt("READ_TIMEOUT", c.Server.ReadTimeout)
	c.Server.WriteTimeout = getEnvAsInt("WRITE_TIMEOUT", c.Server.WriteTimeout)
	c.Server.ShutdownTimeout = getEnvAsInt("SHUTDOWN_TIMEOUT", c.Server.ShutdownTimeout)
	c.Auth.APIKeys = getEnvAsSlice("API_KEYS", c.Auth.APIKeys)
	c.CORS.AllowedOrigins = getEnvAsSlice("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)
	c.Session.TTL = getEnvAsInt("SESSION_TTL", c.Session.TTL)
	c.Session.SweepInterval = getEnvAsInt("SESSION_SWEEP_INTERVAL", c.Session.SweepInterval)
	c.Metrics.Enabled = getEnvAsBool("METRICS_ENABLED", c.Metrics.Enabled)
	c.Metrics.Path = getEnv("METRICS_PATH", c.Metrics.Path)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if len(c.Auth.APIKeys) == 0 {
		return fmt.Errorf("at least one API key must be configured")
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}

	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("SESSION_SWEEP_INTERVAL must be positive")
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("METRICS_PATH must start with /: %s", c.Metrics.Path)
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}

// Package config loads service configuration from defaults, an optional YAML file
// and COURT_FINDER_ environment variables.
package config

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes every configuration environment variable.
	EnvPrefix = "COURT_FINDER_"
	// FileEnv names the variable holding the optional YAML file path.
	FileEnv = EnvPrefix + "CONFIG"
)

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		Port:            "8080",
		APIBaseURL:      "http://localhost:8787",
		SnapshotPath:    "data/parsed-matches.json",
		FetchTimeout:    15 * time.Second,
		RefreshInterval: 10 * time.Minute,
		LogLevel:        "info",
		City:            "Đà Nẵng",
	}
}

// Load builds a Config by layering, from lowest to highest precedence:
//  1. defaults (New)
//  2. the YAML file named by COURT_FINDER_CONFIG, if set
//  3. environment variables with the COURT_FINDER_ prefix, including those from .env
func Load(_ context.Context) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	k := koanf.New(".")

	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrLoadConfig, path, err)
		}
	}

	// COURT_FINDER_FETCH_TIMEOUT -> fetch_timeout
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: read environment: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values that would otherwise fail late at runtime.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	}
	if c.APIBaseURL != "" {
		u, err := url.Parse(c.APIBaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: api_base_url %q is not an absolute URL", ErrInvalidConfig, c.APIBaseURL)
		}
	}
	if c.SnapshotURL == "" && c.SnapshotPath == "" {
		return fmt.Errorf("%w: one of snapshot_url or snapshot_path is required", ErrInvalidConfig)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("%w: fetch_timeout must be positive", ErrInvalidConfig)
	}
	if c.RefreshInterval < 0 {
		return fmt.Errorf("%w: refresh_interval must not be negative", ErrInvalidConfig)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q: %w", ErrInvalidConfig, c.LogLevel, err)
	}
	return nil
}

// Level returns the configured log level, defaulting to info.
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

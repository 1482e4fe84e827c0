// Package config loads generator settings from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/dg-generator/internal/errors"
)

// Config holds process-wide settings. Command-line flags override these
// per invocation.
type Config struct {
	// RedisAddr enables persistence; host:port or a redis:// URL
	RedisAddr string `env:"DG_REDIS_ADDR"`

	// DataDir replaces the embedded catalog with YAML files on disk
	DataDir string `env:"DG_DATA_DIR"`

	LogLevel string `env:"DG_LOG_LEVEL" envDefault:"info"`

	// CharacterTTL expires persisted characters; zero keeps them
	CharacterTTL time.Duration `env:"DG_CHARACTER_TTL" envDefault:"0s"`
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Validate checks the parsed values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel), []string{"debug", "info", "warn", "error"}, vb)
	if c.CharacterTTL < 0 {
		vb.Field("CharacterTTL", "cannot be negative")
	}

	return vb.Build()
}

// Level returns the slog level for LogLevel, defaulting to info
func (c *Config) Level() slog.Level {
	if level, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return level
	}
	return slog.LevelInfo
}

// Persistent reports whether a Redis address is configured
func (c *Config) Persistent() bool {
	return c.RedisAddr != ""
}

// Package config loads woc settings from built-in defaults, an optional YAML
// file and WOC_-prefixed environment variables, in increasing precedence,
// and validates the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidConfig is returned when loading or validation fails.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full woc configuration.
type Config struct {
	Engine  EngineConfig  `koanf:"engine"`
	Prune   PruneConfig   `koanf:"prune"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
	Workers int           `koanf:"workers" validate:"gte=1,lte=1024"`
}

// EngineConfig parameterizes crowd.Engine.
type EngineConfig struct {
	MaxM    int    `koanf:"max_m" validate:"gte=1"`
	NodeKey string `koanf:"node_key" validate:"required"`
	MaxH    int    `koanf:"max_h" validate:"gte=0"`
}

// PruneConfig parameterizes prune.Iteratively. WeightThreshold is nil when
// edge culling is off.
type PruneConfig struct {
	Threshold       int      `koanf:"threshold" validate:"gte=0"`
	WeightThreshold *float64 `koanf:"weight_threshold"`
	WeightKey       string   `koanf:"weight_key" validate:"required"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// MetricsConfig toggles the engine's Prometheus counters.
type MetricsConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace" validate:"required_if=Enabled true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// SlogLevel maps Level onto slog levels; unknown values mean info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text or JSON logger writing to w.
func (c LogConfig) NewLogger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

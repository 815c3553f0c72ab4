package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. WOC_ENGINE_MAX_M.
const EnvPrefix = "WOC_"

// Defaults returns the built-in values, keyed by dotted path.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"engine.max_m":      5,
		"engine.node_key":   "T",
		"engine.max_h":      6,
		"prune.threshold":   1,
		"prune.weight_key":  "weight",
		"log.level":         "info",
		"log.format":        "text",
		"metrics.enabled":   false,
		"metrics.namespace": "woc",
		"workers":           4,
	}
}

// envKeys maps lower-cased env names (prefix stripped) onto keys whose
// segments contain underscores.
var envKeys = map[string]string{
	"engine_max_m":           "engine.max_m",
	"engine_node_key":        "engine.node_key",
	"engine_max_h":           "engine.max_h",
	"prune_threshold":        "prune.threshold",
	"prune_weight_threshold": "prune.weight_threshold",
	"prune_weight_key":       "prune.weight_key",
}

// Loader layers the configuration sources.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile adds a YAML file layer. An empty path means no file.
func WithFile(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// WithEnvPrefix overrides EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) { l.envPrefix = prefix }
}

// NewLoader returns a Loader over defaults and the environment.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{k: koanf.New("."), envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges defaults, the file (if any) and the environment, then validates.
// A named file that cannot be read is an error.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("%w: defaults: %v", ErrInvalidConfig, err)
	}
	if l.path != "" {
		if err := l.k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: file %s: %v", ErrInvalidConfig, l.path, err)
		}
	}
	err := l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, l.envPrefix))
		if mapped, ok := envKeys[key]; ok {
			return mapped, value
		}
		return strings.ReplaceAll(key, "_", "."), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: env: %v", ErrInvalidConfig, err)
	}

	var cfg Config
	if err = l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load is NewLoader(WithFile(path)).Load().
func Load(path string) (*Config, error) {
	return NewLoader(WithFile(path)).Load()
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvstep/dijkstra"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config aggregates lvstep command configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging"`
	Engine  EngineConfig  `toml:"engine"`
	Metrics MetricsConfig `toml:"metrics"`
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string `toml:"level"`
	Format        string `toml:"format"` // text|json
	IncludeCaller bool   `toml:"include_caller"`
}

// EngineConfig carries defaults for the stepping engine.
type EngineConfig struct {
	Source               string `toml:"source"`
	EdgeOrder            string `toml:"edge_order"` // weight|target|id
	AllowNegativeWeights bool   `toml:"allow_negative_weights"`
	ReturnPath           bool   `toml:"return_path"`
}

// MetricsConfig enables the Prometheus endpoint when Addr is set.
type MetricsConfig struct {
	Addr string `toml:"addr"`
	Path string `toml:"path"`
}

const (
	defaultLoggingLevel  = "info"
	defaultLoggingFormat = "text"
	defaultEdgeOrder     = "weight"
	defaultMetricsPath   = "/metrics"
)

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: defaultLoggingLevel, Format: defaultLoggingFormat},
		Engine:  EngineConfig{EdgeOrder: defaultEdgeOrder, ReturnPath: true},
		Metrics: MetricsConfig{Path: defaultMetricsPath},
	}
}

// Load builds the configuration: defaults, then the TOML file at path (if
// path is non-empty), then environment overrides. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return Config{}, fmt.Errorf("config: decoding %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			return Config{}, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
		}
	}

	cfg.Logging.Level = valueOrDefault("LVSTEP_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = valueOrDefault("LVSTEP_LOG_FORMAT", cfg.Logging.Format)
	cfg.Logging.IncludeCaller = parseBoolWithDefault("LVSTEP_LOG_INCLUDE_CALLER", cfg.Logging.IncludeCaller)
	cfg.Engine.EdgeOrder = valueOrDefault("LVSTEP_EDGE_ORDER", cfg.Engine.EdgeOrder)
	cfg.Metrics.Addr = valueOrDefault("LVSTEP_METRICS_ADDR", cfg.Metrics.Addr)

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks enumerated values.
func (c Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: logging.format %q", ErrInvalidConfig, c.Logging.Format)
	}
	if _, ok := dijkstra.ParseEdgeOrder(c.Engine.EdgeOrder); !ok {
		return fmt.Errorf("%w: engine.edge_order %q", ErrInvalidConfig, c.Engine.EdgeOrder)
	}
	if c.Metrics.Path != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path %q must start with /", ErrInvalidConfig, c.Metrics.Path)
	}

	return nil
}

// EngineOptions translates the engine section into dijkstra options.
func (c Config) EngineOptions() []dijkstra.Option {
	order, _ := dijkstra.ParseEdgeOrder(c.Engine.EdgeOrder)
	opts := []dijkstra.Option{dijkstra.WithEdgeOrder(order)}
	if c.Engine.AllowNegativeWeights {
		opts = append(opts, dijkstra.WithAllowNegativeWeights())
	}
	if c.Engine.ReturnPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}

	return opts
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

// Package config loads lvroute settings from a YAML file, an optional .env
// file and LVROUTE_* environment variables, in that order of precedence
// (later wins), then validates the result.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvroute/internal/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variable names.
const (
	EnvLogLevel        = "LVROUTE_LOG_LEVEL"
	EnvLogFormat       = "LVROUTE_LOG_FORMAT"
	EnvAddr            = "LVROUTE_ADDR"
	EnvMapFile         = "LVROUTE_MAP_FILE"
	EnvShutdownTimeout = "LVROUTE_SHUTDOWN_TIMEOUT"
	EnvCacheSize       = "LVROUTE_CACHE_SIZE"
	EnvStrictWeights   = "LVROUTE_STRICT_WEIGHTS"
)

// Config is the full lvroute configuration.
type Config struct {
	Log     logging.Config `yaml:"log"`
	Server  ServerConfig   `yaml:"server"`
	Planner PlannerConfig  `yaml:"planner"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr              string        `yaml:"addr" validate:"required"`
	MapFile           string        `yaml:"map_file"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout" validate:"gt=0"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

// PlannerConfig configures trip planning.
type PlannerConfig struct {
	CacheSize     int  `yaml:"cache_size" validate:"gte=0"`
	StrictWeights bool `yaml:"strict_weights"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: logging.DefaultConfig(),
		Server: ServerConfig{
			Addr:              ":8080",
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Planner: PlannerConfig{CacheSize: 128},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// empty), the given .env files (or ./.env if present when none are given)
// and the process environment.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err = yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("config: env file: %w", err)
		}
	} else {
		_ = godotenv.Load() // ./.env is optional
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides fields from LVROUTE_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		c.Log.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Log.Format = v
	}
	if v, ok := lookup(EnvAddr); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvMapFile); ok {
		c.Server.MapFile = v
	}
	if v, ok := lookup(EnvShutdownTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvShutdownTimeout, err)
		}
		c.Server.ShutdownTimeout = d
	}
	if v, ok := lookup(EnvCacheSize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvCacheSize, err)
		}
		c.Planner.CacheSize = n
	}
	if v, ok := lookup(EnvStrictWeights); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, EnvStrictWeights, err)
		}
		c.Planner.StrictWeights = b
	}

	return nil
}

var validate = validator.New()

// Validate checks struct tags on the whole tree.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s fails %q", ErrInvalid, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

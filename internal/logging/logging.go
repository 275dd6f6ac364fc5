// Package logging builds the zap loggers used by the lvroute binary.
package logging

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrUnknownFormat indicates a log format other than json or console.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config selects level and encoding.
type Config struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json console"`
}

// DefaultConfig logs info and above as JSON.
func DefaultConfig() Config {
	return Config{Level: "info", Format: "json"}
}

// New returns a production (json) or development (console) logger at the
// configured level, writing to stderr.
func New(c Config) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	var zc zap.Config
	switch strings.ToLower(c.Format) {
	case "", "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

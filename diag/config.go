package diag

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/diagkit/diag/alloc"
	"github.com/joshuapare/diagkit/diag/logger"
)

// Config selects and tunes the allocator and logger backends
// declaratively:
//
//	allocator:
//	  backend: tracking        # passthrough | tracking
//	logger:
//	  backend: buffered        # console | buffered
//	  level: debug             # none|error|warning|info|debug|trace
//	  bufferSize: 1024
//	  prefix: diagkit
type Config struct {
	Allocator AllocatorConfig `yaml:"allocator"`
	Logger    LoggerConfig    `yaml:"logger"`
}

// AllocatorConfig selects the allocation backend.
type AllocatorConfig struct {
	// Backend is "passthrough" (default) or "tracking".
	Backend string `yaml:"backend"`
}

// LoggerConfig selects and tunes the logging backend.
type LoggerConfig struct {
	// Backend is "console" (default) or "buffered".
	Backend string `yaml:"backend"`

	// Level is the initial threshold name; empty means none.
	Level string `yaml:"level"`

	// BufferSize is the buffered backend's entry capacity in bytes;
	// zero selects the default.
	BufferSize int `yaml:"bufferSize"`

	// Prefix is the console facility name; empty selects the default.
	Prefix string `yaml:"prefix"`
}

// ParseConfig decodes a YAML configuration document.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("diag: parse config: %w", err)
	}
	return cfg, nil
}

// ParseLevel converts a level name to a logger.Level. The empty string
// means LevelNone.
func ParseLevel(s string) (logger.Level, error) {
	switch strings.ToLower(s) {
	case "", "none":
		return logger.LevelNone, nil
	case "error":
		return logger.LevelError, nil
	case "warning", "warn":
		return logger.LevelWarning, nil
	case "info":
		return logger.LevelInfo, nil
	case "debug":
		return logger.LevelDebug, nil
	case "trace":
		return logger.LevelTrace, nil
	default:
		return logger.LevelNone, fmt.Errorf("diag: unknown log level %q", s)
	}
}

// Build constructs a Context with the configured backends.
func (cfg Config) Build() (*Context, error) {
	var a alloc.Allocator
	switch cfg.Allocator.Backend {
	case "", "passthrough":
		a = alloc.NewPassthrough(nil)
	case "tracking":
		a = alloc.NewTracking(nil)
	default:
		return nil, fmt.Errorf("diag: unknown allocator backend %q", cfg.Allocator.Backend)
	}

	lvl, err := ParseLevel(cfg.Logger.Level)
	if err != nil {
		return nil, err
	}

	var l logger.Logger
	switch cfg.Logger.Backend {
	case "", "console":
		l = logger.NewConsole(logger.ConsoleOptions{
			Level:  lvl,
			Prefix: cfg.Logger.Prefix,
		})
	case "buffered":
		b := logger.NewBuffered(logger.WriterSink{W: os.Stderr}, cfg.Logger.BufferSize)
		b.SetLevel(lvl)
		l = b
	default:
		return nil, fmt.Errorf("diag: unknown logger backend %q", cfg.Logger.Backend)
	}

	return New(Options{Allocator: a, Logger: l}), nil
}

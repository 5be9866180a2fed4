// Package config loads ruleflow deployment configuration from YAML or
// JSON files: where rules are persisted, how the engine logs, and an
// optional inline list of rules to compile at startup.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level ruleflow configuration.
type Config struct {
	// Store configures rule persistence.
	Store StoreConfig `yaml:"store" json:"store"`

	// Logging configures the engine logger.
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Rules is an optional list of rule texts combined at startup.
	Rules []string `yaml:"rules" json:"rules"`
}

// StoreConfig selects and configures the rule store backend.
type StoreConfig struct {
	// Driver is "sqlite" or "memory".
	Driver string `yaml:"driver" json:"driver"`

	// Path is the SQLite database file (ignored by the memory driver).
	Path string `yaml:"path" json:"path"`
}

// LoggingConfig configures the slog logger.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `yaml:"level" json:"level"`

	// Format is "text" or "json".
	Format string `yaml:"format" json:"format"`
}

// Default returns the configuration used when no file is provided:
// a SQLite store at ./rules.db and info-level text logging.
func Default() Config {
	return Config{
		Store:   StoreConfig{Driver: "sqlite", Path: "./rules.db"},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads configuration from a file, auto-detecting format by
// extension. Supported extensions: .yaml, .yml, .json.
// Missing fields fall back to Default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return cfg, cfg.Validate()
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks driver, level, and format values.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("unknown store driver: %q", c.Store.Driver)
	}
	if c.Store.Driver == "sqlite" && c.Store.Path == "" {
		return fmt.Errorf("sqlite store requires a path")
	}
	if _, err := c.Logging.level(); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Logging.Format)
	}
	return nil
}

// NewLogger builds a slog logger writing to stderr at the configured
// level and format.
func (l LoggingConfig) NewLogger() (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch l.Format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text", "":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return nil, fmt.Errorf("unknown log format: %q", l.Format)
	}
	return slog.New(handler), nil
}

func (l LoggingConfig) level() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level: %q", l.Level)
	}
}

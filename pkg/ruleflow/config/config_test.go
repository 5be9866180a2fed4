package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/randalmurphal/ruleflow/pkg/ruleflow/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ruleflow.yaml", `
store:
  driver: sqlite
  path: /var/lib/ruleflow/rules.db
logging:
  level: debug
  format: json
rules:
  - age > 30
  - department = 'Sales'
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "/var/lib/ruleflow/rules.db", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, []string{"age > 30", "department = 'Sales'"}, cfg.Rules)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "ruleflow.json", `{
		"store": {"driver": "memory"},
		"logging": {"level": "warn", "format": "text"}
	}`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store.Driver)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := writeFile(t, "partial.yaml", `
store:
  driver: memory
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	// Unset sections keep their defaults.
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadErrors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})

	t.Run("UnsupportedExtension", func(t *testing.T) {
		path := writeFile(t, "config.toml", "driver = 'sqlite'")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "unsupported config file extension")
	})

	t.Run("MalformedYAML", func(t *testing.T) {
		path := writeFile(t, "bad.yaml", "store: [unclosed")
		_, err := config.Load(path)
		assert.Error(t, err)
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		path := writeFile(t, "driver.yaml", "store:\n  driver: postgres\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "unknown store driver")
	})

	t.Run("SQLiteWithoutPath", func(t *testing.T) {
		path := writeFile(t, "nopath.yaml", "store:\n  driver: sqlite\n  path: \"\"\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "requires a path")
	})

	t.Run("UnknownLevel", func(t *testing.T) {
		path := writeFile(t, "level.yaml", "logging:\n  level: loud\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "unknown log level")
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		path := writeFile(t, "format.yaml", "logging:\n  format: xml\n")
		_, err := config.Load(path)
		assert.ErrorContains(t, err, "unknown log format")
	})
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.NotEmpty(t, cfg.Store.Path)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		t.Run(format, func(t *testing.T) {
			logger, err := config.LoggingConfig{Level: "info", Format: format}.NewLogger()
			require.NoError(t, err)
			assert.NotNil(t, logger)
		})
	}

	t.Run("BadLevel", func(t *testing.T) {
		_, err := config.LoggingConfig{Level: "loud", Format: "text"}.NewLogger()
		assert.Error(t, err)
	})
}

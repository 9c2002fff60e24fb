package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes the given variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

// TestLoadDefaults expects the documented defaults when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "ENVIRONMENT", "LOG_LEVEL", "PORT", "GIN_LOGGING", "DBHOST", "DBNAME")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "test", cfg.Database.Name)
	assert.False(t, cfg.Database.Configured())
}

// TestLoadEnvironment expects that environment variables are picked up.
func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_LOGGING", "off")
	t.Setenv("DBHOST", "localhost:3306")
	t.Setenv("DBUSER", "dirk")
	t.Setenv("DBPWD", "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "off", cfg.HTTP.Logging)
	assert.Equal(t, "localhost:3306", cfg.Database.Host)
	assert.Equal(t, "dirk", cfg.Database.User)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.True(t, cfg.Database.Configured())
}

// TestLoadFile expects that values from a YAML file are used and overridden by the environment.
func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "environment: development\nlogLevel: debug\nhttp:\n  port: 7070\ndatabase:\n  host: db:3306\n  name: contacts\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	unsetEnv(t, "ENVIRONMENT", "PORT", "DBHOST", "DBNAME")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.HTTP.Port)
	assert.Equal(t, "db:3306", cfg.Database.Host)
	assert.Equal(t, "contacts", cfg.Database.Name)
}

// TestLoadMissingFile expects an error for a file that does not exist.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	assert.Error(t, err)
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/jobfit",
		"cache_size": 50,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/jobfit", cfg.DatabaseURL)
	assert.Equal(t, 50, cfg.CacheSize)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.Debug)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{port: 9090}`)

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Port)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Port: 8080}).Validate())
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.Error(t, (&Config{Port: 8080, CacheSize: -1}).Validate())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-host/jobfit")

	cfg := &Config{DatabaseURL: "postgres://file-host/jobfit"}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://env-host/jobfit", cfg.DatabaseURL)
}

func TestApplyEnv_EmptyEnvKeepsFileValue(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg := &Config{DatabaseURL: "postgres://file-host/jobfit"}
	cfg.ApplyEnv()

	assert.Equal(t, "postgres://file-host/jobfit", cfg.DatabaseURL)
}

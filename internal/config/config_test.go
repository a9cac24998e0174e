package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/ndc-comments/internal/storage/sqlite"
)

// unsetenv clears key for the duration of the test; t.Setenv registers the
// restore, which also undoes anything godotenv exports for that key.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, "SQLITE_PATH")
	unsetenv(t, "LOG_LEVEL")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, sqlite.DefaultPath, cfg.SQLitePath)
	assert.Equal(t, "merged_ndc_all_records.sqlite", cfg.SQLitePath)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SQLITE_PATH", "/data/ndc.sqlite")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "/data/ndc.sqlite", cfg.SQLitePath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromDotEnvFile(t *testing.T) {
	unsetenv(t, "SQLITE_PATH")
	unsetenv(t, "LOG_LEVEL")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SQLITE_PATH=from-file.sqlite\nLOG_LEVEL=error\n"), 0o644))

	cfg := Load(envFile)

	assert.Equal(t, "from-file.sqlite", cfg.SQLitePath)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestEnvironmentWinsOverDotEnvFile(t *testing.T) {
	t.Setenv("SQLITE_PATH", "from-env.sqlite")
	unsetenv(t, "LOG_LEVEL")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SQLITE_PATH=from-file.sqlite\n"), 0o644))

	cfg := Load(envFile)

	assert.Equal(t, "from-env.sqlite", cfg.SQLitePath)
}

func TestBlankValueFallsBack(t *testing.T) {
	t.Setenv("SQLITE_PATH", "   ")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, sqlite.DefaultPath, cfg.SQLitePath)
}

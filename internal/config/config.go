package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hetulpatel/ndc-comments/internal/storage/sqlite"
)

// Config holds the settings shared by the commands.
type Config struct {
	SQLitePath string
	LogLevel   string
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are ignored and variables already set in
// the environment take precedence over file values.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return Config{
		SQLitePath: envString("SQLITE_PATH", sqlite.DefaultPath),
		LogLevel:   envString("LOG_LEVEL", "info"),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

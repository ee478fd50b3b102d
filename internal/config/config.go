// Package config loads environment driven configuration, optionally from a
// local .env file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config selects the storage backend and server settings at process start.
type Config struct {
	Port        int
	Backend     string // memory | sqlite3 | postgres
	DatabaseURL string // postgres DSN
	SQLitePath  string
	SeedData    bool
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Port:       8080,
		Backend:    getEnv("STORAGE_BACKEND", "memory"),
		SQLitePath: getEnv("SQLITE_PATH", "mosque.db"),
		SeedData:   true,
	}

	if portValue := os.Getenv("PORT"); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			return Config{}, fmt.Errorf("invalid PORT value %q", portValue)
		}
		cfg.Port = port
	}

	if seedValue := os.Getenv("SEED_DATA"); seedValue != "" {
		seed, err := strconv.ParseBool(seedValue)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SEED_DATA value %q", seedValue)
		}
		cfg.SeedData = seed
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")

	switch cfg.Backend {
	case "memory", "sqlite3":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
		}
	default:
		return Config{}, fmt.Errorf("unknown STORAGE_BACKEND %q (want memory, sqlite3 or postgres)", cfg.Backend)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

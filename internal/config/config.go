// Package config reads workbench configuration once at startup. Components
// receive the resulting Config value and never re-read the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Timezone all ledger timestamps are recorded in.
const Timezone = "America/New_York"

// Config holds all configuration for the workbench.
type Config struct {
	// Session is the adventofcode.com session cookie (AOC_SESSION).
	Session string

	// DataDir is the root of the per-puzzle file subtrees (DATA_DIR).
	DataDir string

	// DBPath locates the SQLite store (SQLITE_PATH, default
	// <DataDir>/aoc.db).
	DBPath string

	// BaseURL is the puzzle site root; overridable for testing.
	BaseURL string

	// FetchInterval is the minimum spacing between backfill requests.
	FetchInterval time.Duration

	// SweepInterval is the minimum spacing between full-sweep requests.
	SweepInterval time.Duration

	LogLevel string

	// Location resolves Timezone; loaded once here.
	Location *time.Location
}

// Load reads configuration from the environment (after loading .env if one
// exists) and an optional YAML file named by AOC_CONFIG.
func Load() (*Config, error) {
	// A missing .env is fine; explicit env always wins.
	_ = godotenv.Load()

	dataDir := os.Getenv("DATA_DIR")
	if dataDir == "" {
		return nil, fmt.Errorf("DATA_DIR must be set")
	}

	loc, err := time.LoadLocation(Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", Timezone, err)
	}

	cfg := &Config{
		Session:       os.Getenv("AOC_SESSION"),
		DataDir:       dataDir,
		DBPath:        getEnv("SQLITE_PATH", filepath.Join(dataDir, "aoc.db")),
		BaseURL:       getEnv("AOC_BASE_URL", "https://adventofcode.com"),
		FetchInterval: 2 * time.Second,
		SweepInterval: 5 * time.Second,
		LogLevel:      getEnv("AOC_LOG_LEVEL", "info"),
		Location:      loc,
	}

	if path := os.Getenv("AOC_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DATA_DIR", dir)
	t.Setenv("AOC_SESSION", "cookie")
	t.Setenv("SQLITE_PATH", "")
	t.Setenv("AOC_CONFIG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Session != "cookie" {
		t.Errorf("Session = %q; want cookie", cfg.Session)
	}
	if cfg.DataDir != dir {
		t.Errorf("DataDir = %q; want %q", cfg.DataDir, dir)
	}
	if want := filepath.Join(dir, "aoc.db"); cfg.DBPath != want {
		t.Errorf("DBPath = %q; want %q", cfg.DBPath, want)
	}
	if cfg.FetchInterval != 2*time.Second || cfg.SweepInterval != 5*time.Second {
		t.Errorf("intervals = (%v, %v); want (2s, 5s)", cfg.FetchInterval, cfg.SweepInterval)
	}
	if cfg.Location == nil || cfg.Location.String() != Timezone {
		t.Errorf("Location = %v; want %s", cfg.Location, Timezone)
	}
}

func TestLoad_MissingDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	if _, err := Load(); err == nil {
		t.Error("Load() error = nil; want missing DATA_DIR error")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := "base_url: http://localhost:8080\nlog_level: debug\nthrottle:\n  fetch_seconds: 3\n  sweep_seconds: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	t.Setenv("DATA_DIR", dir)
	t.Setenv("AOC_SESSION", "cookie")
	t.Setenv("AOC_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q; want the file override", cfg.BaseURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q; want debug", cfg.LogLevel)
	}
	if cfg.FetchInterval != 3*time.Second || cfg.SweepInterval != 10*time.Second {
		t.Errorf("intervals = (%v, %v); want (3s, 10s)", cfg.FetchInterval, cfg.SweepInterval)
	}
}

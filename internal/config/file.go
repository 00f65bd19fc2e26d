package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the optional YAML overlay named by AOC_CONFIG. Only the keys
// present override the environment-derived settings.
type fileConfig struct {
	BaseURL  string `yaml:"base_url"`
	LogLevel string `yaml:"log_level"`
	Throttle struct {
		FetchSeconds int `yaml:"fetch_seconds"`
		SweepSeconds int `yaml:"sweep_seconds"`
	} `yaml:"throttle"`
}

// applyFile overlays settings from a YAML file onto cfg.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.BaseURL != "" {
		c.BaseURL = fc.BaseURL
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if fc.Throttle.FetchSeconds > 0 {
		c.FetchInterval = time.Duration(fc.Throttle.FetchSeconds) * time.Second
	}
	if fc.Throttle.SweepSeconds > 0 {
		c.SweepInterval = time.Duration(fc.Throttle.SweepSeconds) * time.Second
	}
	return nil
}

package main

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds run parameters. Zero values of Workers, CacheDir and
// MetricsFile mean "use GOMAXPROCS", "no result store" and "no export".
type Config struct {
	Version int `yaml:"version"`
	// Part1Horizon is the number of minutes each blueprint gets when summing quality levels.
	Part1Horizon int `yaml:"part1_horizon"`
	// Part2Horizon is the number of minutes each blueprint gets when multiplying results.
	Part2Horizon int `yaml:"part2_horizon"`
	// Part2Take is how many leading blueprints survive into the product.
	Part2Take int `yaml:"part2_take"`
	// Workers caps the number of blueprints searched concurrently.
	Workers int `yaml:"workers"`
	// Prune enables the dominance heuristic. Disabling it makes the search exhaustive.
	Prune       bool   `yaml:"prune"`
	CacheDir    string `yaml:"cache_dir"`
	MetricsFile string `yaml:"metrics_file"`
}

// DefaultConfig returns the parameters of the standard puzzle.
func DefaultConfig() Config {
	return Config{
		Version:      1,
		Part1Horizon: 24,
		Part2Horizon: 32,
		Part2Take:    3,
		Prune:        true,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Version != 1 {
		return cfg, fmt.Errorf("unsupported config version: %d", cfg.Version)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects negative horizons and counts.
func (c Config) Validate() error {
	switch {
	case c.Part1Horizon < 0:
		return fmt.Errorf("part1_horizon must not be negative, got %d", c.Part1Horizon)
	case c.Part2Horizon < 0:
		return fmt.Errorf("part2_horizon must not be negative, got %d", c.Part2Horizon)
	case c.Part2Take < 0:
		return fmt.Errorf("part2_take must not be negative, got %d", c.Part2Take)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

var logLevel = new(slog.LevelVar)

// logger receives search progress. Debug records are emitted only in verbose mode.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose toggles per-blueprint progress records on stderr.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
		return
	}
	logLevel.Set(slog.LevelInfo)
}

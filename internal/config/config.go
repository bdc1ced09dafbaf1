package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the build configuration.
type Config struct {
	Input            string  `yaml:"input"`      // ways file: local path or go-getter URL
	OutputDir        string  `yaml:"output_dir"` // world directory; regions go to <dir>/region
	Terrain          string  `yaml:"terrain"`    // "flat" or "perlin"
	Seed             int64   `yaml:"seed"`
	GroundLevel      int     `yaml:"ground_level"`
	TerrainAmplitude float64 `yaml:"terrain_amplitude"`
	LogLevel         string  `yaml:"log_level"`
	MetricsFile      string  `yaml:"metrics_file"` // empty = no metrics dump
	Workers          int     `yaml:"workers"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:        "world",
		Terrain:          "flat",
		GroundLevel:      64,
		TerrainAmplitude: 12,
		LogLevel:         "info",
		Workers:          4,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["input"] {
		cfg.Input = fromFile.Input
	}
	if !explicitFlags["out"] {
		cfg.OutputDir = fromFile.OutputDir
	}
	if !explicitFlags["terrain"] {
		cfg.Terrain = fromFile.Terrain
	}
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["ground"] {
		cfg.GroundLevel = fromFile.GroundLevel
	}
	if !explicitFlags["amplitude"] {
		cfg.TerrainAmplitude = fromFile.TerrainAmplitude
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
	if !explicitFlags["metrics-file"] {
		cfg.MetricsFile = fromFile.MetricsFile
	}
	if !explicitFlags["workers"] {
		cfg.Workers = fromFile.Workers
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	switch {
	case c.Input == "":
		return errors.New("input is required")
	case c.OutputDir == "":
		return errors.New("output dir is required")
	case c.Terrain != "flat" && c.Terrain != "perlin":
		return fmt.Errorf("unknown terrain %q", c.Terrain)
	case c.GroundLevel < 1 || c.GroundLevel > 250:
		return fmt.Errorf("ground level %d outside 1..250", c.GroundLevel)
	case c.TerrainAmplitude < 0:
		return fmt.Errorf("negative terrain amplitude %v", c.TerrainAmplitude)
	case c.Workers < 1:
		return fmt.Errorf("workers must be positive, got %d", c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn" or "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

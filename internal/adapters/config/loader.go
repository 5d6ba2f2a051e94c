// Package config provides the configuration loader for memo.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Load reads the configuration from the given working directory. A missing
// file yields the defaults; a malformed file is an error.
func Load(cwd string) (*Config, error) {
	path := filepath.Join(cwd, FileName)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := validate(cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	if cfg.Capacity <= 0 {
		return zerr.With(zerr.New("capacity must be positive"), "capacity", cfg.Capacity)
	}
	if cfg.Monitor.CleanupThreshold <= 0 || cfg.Monitor.CleanupThreshold > 1 {
		return zerr.With(zerr.New("cleanup threshold must be in (0, 1]"),
			"threshold", cfg.Monitor.CleanupThreshold)
	}
	if cfg.Monitor.SizeTarget < 0 || cfg.Monitor.SizeTarget >= cfg.Monitor.CleanupThreshold {
		return zerr.With(zerr.New("size target must be below the cleanup threshold"),
			"target", cfg.Monitor.SizeTarget)
	}
	if cfg.Monitor.Interval <= 0 || cfg.Monitor.CleanupInterval <= 0 {
		return zerr.New("monitor intervals must be positive")
	}
	if cfg.TTL.Short <= 0 || cfg.TTL.Medium <= 0 || cfg.TTL.Long <= 0 {
		return zerr.New("ttl classes must be positive")
	}
	return nil
}

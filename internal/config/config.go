// Package config loads the service configuration from an optional YAML file
// with environment-variable overrides for the common deployment knobs.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything the process needs at startup
type Config struct {
	Addr        string        // listen address, e.g. ":8080"
	Ledger      string        // "memory" or "bolt"
	BoltPath    string        // database file when ledger is "bolt"
	LockTimeout time.Duration // max wait for a lot's lock
}

// fileConfig is the raw YAML shape; durations arrive as strings ("5s")
type fileConfig struct {
	Addr        string `yaml:"addr"`
	Ledger      string `yaml:"ledger"`
	BoltPath    string `yaml:"bolt_path"`
	LockTimeout string `yaml:"lock_timeout"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Addr:        ":8080",
		Ledger:      "memory",
		BoltPath:    "auction.db",
		LockTimeout: 5 * time.Second,
	}
}

// Load reads the YAML file at path (skipped when path is empty or missing),
// applies env overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err == nil {
			var raw fileConfig
			if err := yaml.Unmarshal(data, &raw); err != nil {
				return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
			}
			if raw.Addr != "" {
				cfg.Addr = raw.Addr
			}
			if raw.Ledger != "" {
				cfg.Ledger = raw.Ledger
			}
			if raw.BoltPath != "" {
				cfg.BoltPath = raw.BoltPath
			}
			if raw.LockTimeout != "" {
				d, err := time.ParseDuration(raw.LockTimeout)
				if err != nil {
					return Config{}, fmt.Errorf("config: lock_timeout: %w", err)
				}
				cfg.LockTimeout = d
			}
		}
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Addr = ":" + p
	}
	if l := os.Getenv("AUCTION_LEDGER"); l != "" {
		cfg.Ledger = l
	}
	if db := os.Getenv("AUCTION_DB"); db != "" {
		cfg.BoltPath = db
	}

	if cfg.Ledger != "memory" && cfg.Ledger != "bolt" {
		return Config{}, fmt.Errorf("config: unknown ledger backend %q", cfg.Ledger)
	}
	if cfg.LockTimeout <= 0 {
		return Config{}, fmt.Errorf("config: lock_timeout must be positive")
	}
	return cfg, nil
}

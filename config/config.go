// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultAddr        = ":8080"
	DefaultStoreDriver = "memory"
)

// Store drivers.
const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
)

// Config holds the full configuration for the service.
type Config struct {
	// Addr is the address the HTTP server listens on.
	Addr string `toml:"addr"`

	Store StoreConfig `toml:"store"`
}

// StoreConfig selects and parameterizes the backing store.
type StoreConfig struct {
	// Driver is "memory" or "postgres".
	Driver string `toml:"driver"`

	// DSN is the connection string for the postgres driver. The
	// DATABASE_URL environment variable takes precedence when set.
	DSN string `toml:"dsn"`
}

// Load builds a Config from defaults, an optional TOML file, and the
// environment, in that order. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Config{
		Addr:  DefaultAddr,
		Store: StoreConfig{Driver: DefaultStoreDriver},
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		cfg.Store.DSN = dsn
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store driver %q requires a DSN (set store.dsn or DATABASE_URL)", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	return nil
}

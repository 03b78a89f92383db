// Package config loads and saves the scdmod TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nordlys/scdmod/internal/osutil"
)

const (
	// AppName is the application name used for the config directory.
	AppName = "scdmod"
	// ConfigFile is the name of the TOML configuration file.
	ConfigFile = "config.toml"
)

// Environment variables consulted when a directory is neither given on the
// command line nor set in the config file.
const (
	// EnvScheduleDir names the directory holding per-site schedule files.
	EnvScheduleDir = "LOCAL_SCHEDULE_DIR"
	// EnvBorealisPath names the Borealis checkout; experiments live under
	// src/borealis_experiments inside it.
	EnvBorealisPath = "BOREALISPATH"
)

// Config represents the application configuration.
type Config struct {
	// ScheduleDir is the directory containing <site>.scd files.
	ScheduleDir string `toml:"schedule_dir"`
	// ExperimentsDir is the Borealis experiments directory to scan.
	ExperimentsDir string `toml:"experiments_dir"`
	// Theme is the TUI color theme name.
	Theme string `toml:"theme"`
}

// DefaultConfig returns a Config with defaults: directories unset (resolved
// from arguments or the environment) and the default theme.
func DefaultConfig() Config {
	return Config{
		Theme: "dracula",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for a cross-platform XDG-compliant config
// directory, creating it if needed.
func GetConfigPath() (string, error) {
	configDir, err := osutil.Provider.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := osutil.Provider.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault reads the config file at path. A missing file yields the
// defaults; a malformed file is an error.
func LoadOrDefault(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path as TOML.
func Save(path string, cfg Config) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	if err := toml.NewEncoder(file).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

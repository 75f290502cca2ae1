// Package config reads and writes the lifeadvance TOML configuration file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/julianstephens/lifeadvance/internal/constants"
	"github.com/julianstephens/lifeadvance/internal/errors"
	"github.com/julianstephens/lifeadvance/internal/utils"
)

// Config is the on-disk configuration. Command line flags take precedence
// over every field.
type Config struct {
	DataPath             string `toml:"data_path"`
	Backend              string `toml:"backend"`  // "sqlite" (default), "json" or "memory"
	Timezone             string `toml:"timezone"` // IANA name, empty or "Local" for the system zone
	CompletionWindowDays int    `toml:"completion_window_days"`
	Debug                bool   `toml:"debug"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DataPath:             constants.DefaultDataPath,
		Backend:              constants.BackendSQLite,
		Timezone:             "Local",
		CompletionWindowDays: constants.DefaultCompletionWindowDays,
	}
}

// Read decodes a Config from r on top of the defaults.
func Read(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Write encodes cfg to w.
func Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	path, err := utils.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// Exists reports whether a config file is present at path.
func Exists(path string) (bool, error) {
	path, err := utils.ExpandPath(path)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	return true, nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg *Config) error {
	path, err := utils.ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks the backend name, timezone and completion window.
func (c *Config) Validate() error {
	switch c.Backend {
	case constants.BackendSQLite, constants.BackendJSON, constants.BackendMemory:
	default:
		return errors.Invalidf("unknown backend %q", c.Backend)
	}
	if !utils.ValidateTimezone(c.Timezone) {
		return errors.Invalidf("unknown timezone %q", c.Timezone)
	}
	if c.CompletionWindowDays <= 0 {
		return errors.Invalidf("completion_window_days must be positive, got %d", c.CompletionWindowDays)
	}
	if strings.TrimSpace(c.DataPath) == "" && c.Backend != constants.BackendMemory {
		return errors.Invalidf("data_path is required for the %s backend", c.Backend)
	}
	return nil
}

// ResolvedDataPath returns DataPath with ~ expanded.
func (c *Config) ResolvedDataPath() (string, error) {
	return utils.ExpandPath(c.DataPath)
}

// Package appconfig manages application configuration and the bookmark
// store location.
package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvDataDir overrides the bookmark store directory when set. The directory
// it names must already exist.
const EnvDataDir = "MUXMARK_DIR"

const defaultDataDirName = ".muxmark"

// Config holds application-level configuration.
type Config struct {
	// DataDir is the bookmark store directory; empty means the built-in
	// default (~/.muxmark).
	DataDir string `yaml:"data_dir"`
	// TmuxCommand is the multiplexer binary to invoke.
	TmuxCommand string `yaml:"tmux_command"`
	// SessionPrefix is prepended to every derived session name.
	SessionPrefix string `yaml:"session_prefix"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{TmuxCommand: "tmux"}
}

// ConfigDir returns the application config directory path.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/muxmark.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "muxmark"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "muxmark"), nil
}

// Load reads config.yaml from the config directory.
// If the file doesn't exist, creates it with defaults.
func Load() (Config, error) {
	d, err := ConfigDir()
	if err != nil {
		return Config{}, err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return Config{}, err
	}
	path := filepath.Join(d, "config.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return Config{}, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.TmuxCommand == "" {
		cfg.TmuxCommand = "tmux"
	}
	return cfg, nil
}

// Save writes config to config.yaml.
func Save(cfg Config) error {
	d, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return err
	}
	path := filepath.Join(d, "config.yaml")
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

/*
ResolveDataDir returns the bookmark store directory. Precedence: the
MUXMARK_DIR environment variable, then data_dir from the config file, then
~/.muxmark. An explicitly configured directory must already exist; only the
built-in default is created on demand.
*/
func (c Config) ResolveDataDir() (string, error) {
	if dir := os.Getenv(EnvDataDir); dir != "" {
		return requireDir(dir)
	}
	if c.DataDir != "" {
		return requireDir(c.DataDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	dir := filepath.Join(home, defaultDataDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory %s: %w", dir, err)
	}
	return dir, nil
}

func requireDir(dir string) (string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("data directory %s is not a directory", dir)
	}
	return dir, nil
}

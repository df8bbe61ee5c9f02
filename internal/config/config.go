// Package config handles TOML-based configuration loading and
// validation. Credentials live here; empty credentials are valid and
// mean the site is visited anonymously.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Username     string `toml:"username"`
	Password     string `toml:"password"`
	Base         string `toml:"base"`
	Player       string `toml:"player"`
	SubsLanguage string `toml:"subs_language"`
	History      bool   `toml:"history"`
	DownloadDir  string `toml:"download_dir"`
	Debug        bool   `toml:"debug"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Base:         "prehraj.to",
		Player:       "mpv",
		SubsLanguage: "cs",
		History:      true,
		DownloadDir:  "~/Videos/prehrajto",
		Debug:        false,
	}
}

// Origin returns the site origin URL for the configured base host.
func (c *Config) Origin() string {
	return "https://" + c.Base
}

// configDir returns the XDG-compliant config directory.
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "prehrajto"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config", "prehrajto"), nil
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file and merges with defaults.
// A missing config file is not an error; defaults are returned.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks config values are within acceptable bounds. Partial
// credentials are rejected here so the anonymous/credentialed choice is
// always unambiguous.
func (c *Config) Validate() error {
	validPlayers := map[string]bool{
		"mpv": true, "vlc": true,
	}
	if !validPlayers[strings.ToLower(c.Player)] {
		return fmt.Errorf("unsupported player %q (valid: mpv, vlc)", c.Player)
	}

	if c.Base == "" {
		return fmt.Errorf("base host cannot be empty")
	}
	if strings.Contains(c.Base, "/") {
		return fmt.Errorf("base must be a bare host, got %q", c.Base)
	}

	if (c.Username == "") != (c.Password == "") {
		return fmt.Errorf("username and password must be set together or both left empty")
	}

	return nil
}

// HistoryPath returns the path to the resolve history file.
func HistoryPath() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "prehrajto", "history.tsv"), nil
}

// ExpandDownloadDir resolves ~ in the download directory path.
func (c *Config) ExpandDownloadDir() (string, error) {
	dir := c.DownloadDir
	if strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expanding home dir: %w", err)
		}
		dir = filepath.Join(home, dir[2:])
	}
	return filepath.Abs(dir)
}

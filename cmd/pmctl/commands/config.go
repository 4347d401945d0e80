package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	DefaultBaseURL         = "http://localhost:8080"
	DefaultDayWidth        = 3
	DefaultRefreshInterval = "60s"
)

// Config is the pmctl config file.
type Config struct {
	BaseURL         string `toml:"base_url"`
	Token           string `toml:"token"`
	Refresh         string `toml:"refresh"`
	Email           string `toml:"email"`
	DayWidth        int    `toml:"day_width"`
	RefreshInterval string `toml:"refresh_interval"`
}

// DefaultConfigPath is pmctl/config.toml under the user's config directory.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "pmctl", "config.toml")
}

func defaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		DayWidth:        DefaultDayWidth,
		RefreshInterval: DefaultRefreshInterval,
	}
}

// LoadConfig reads path over the defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.DayWidth <= 0 {
		cfg.DayWidth = DefaultDayWidth
	}
	return cfg, nil
}

// SaveConfig writes cfg to path, readable by the owner only since it holds tokens.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("could not open config %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("could not write config %s: %w", path, err)
	}
	return nil
}

// Interval parses RefreshInterval, falling back to the default on bad input.
func (c Config) Interval() time.Duration {
	d, err := time.ParseDuration(c.RefreshInterval)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultRefreshInterval)
	}
	return d
}

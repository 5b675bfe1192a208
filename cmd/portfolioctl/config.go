// ABOUTME: Configuration loading for portfolioctl
// ABOUTME: Reads config.toml from the portfolio config dir, then applies env overrides

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	defaultBaseURL = "http://localhost:5000"
	defaultTimeout = 15 * time.Second
)

type Config struct {
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// LoadConfig reads dir/config.toml. A missing file is not an error.
// PORTFOLIO_API_URL overrides base_url.
func LoadConfig(dir string) (*Config, error) {
	cfg := &Config{}

	path := filepath.Join(dir, "config.toml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if url := os.Getenv("PORTFOLIO_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}

	if _, err := cfg.RequestTimeout(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// RequestTimeout parses Timeout, defaulting to 15s.
func (c *Config) RequestTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return d, nil
}

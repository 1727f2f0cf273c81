// Package file provides the TOML-backed application configuration.
package file

import (
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the application configuration loaded from
// ~/.contexta/config.toml. Missing file or fields fall back to
// defaults; the environment variable CONTEXTA_API_URL overrides the
// base URL regardless of the file.
type Config struct {
	API    APIConfig    `toml:"api"`
	Upload UploadConfig `toml:"upload"`
}

// APIConfig configures the backend client.
type APIConfig struct {
	// BaseURL is the backend API base URL.
	BaseURL string `toml:"base_url"`

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// RateLimitRPS caps outbound calls per second. Negative disables.
	RateLimitRPS float64 `toml:"rate_limit_rps"`
}

// UploadConfig configures upload behaviour.
type UploadConfig struct {
	// RefreshDelaySeconds is how long after an upload the single
	// follow-up document refresh fires.
	RefreshDelaySeconds int `toml:"refresh_delay_seconds"`
}

// Timeout returns the request timeout, or zero to use the default.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RefreshDelay returns the post-upload refresh delay, or zero to use
// the default.
func (c UploadConfig) RefreshDelay() time.Duration {
	return time.Duration(c.RefreshDelaySeconds) * time.Second
}

// LoadConfig reads the configuration file.
// If configDir is empty, defaults to ~/.contexta/config.toml.
// A missing file is not an error: the zero Config is returned and the
// consumers substitute their defaults.
func LoadConfig(configDir string) (*Config, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".contexta")
	}

	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(configDir, "config.toml"))
	if os.IsNotExist(err) {
		applyEnv(cfg)
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv applies environment overrides.
func applyEnv(cfg *Config) {
	if url := os.Getenv("CONTEXTA_API_URL"); url != "" {
		cfg.API.BaseURL = url
	}
}

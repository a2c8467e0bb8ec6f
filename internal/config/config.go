// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; passwords and tokens go to the OS
// keychain.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dremio/cli/internal/xdg"
	"dremio/cli/pkg/dremio"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	Host     string     `json:"host"`
	Username string     `json:"username"`
	LogLevel string     `json:"log_level"`
	JobPoll  PollConfig `json:"job_poll"`
}

// PollConfig tunes job status polling. Interval is a Go duration string.
type PollConfig struct {
	Attempts int    `json:"attempts"`
	Interval string `json:"interval"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	p := dremio.DefaultJobPolling()
	return Config{
		LogLevel: "info",
		JobPoll:  PollConfig{Attempts: p.Attempts, Interval: p.Interval.String()},
	}
}

// JobPolling converts the stored settings into a poll policy. Missing or zero
// values fall back to the library defaults.
func (c Config) JobPolling() (dremio.PollPolicy, error) {
	p := dremio.DefaultJobPolling()
	if c.JobPoll.Attempts > 0 {
		p.Attempts = c.JobPoll.Attempts
	}
	if c.JobPoll.Interval != "" {
		d, err := time.ParseDuration(c.JobPoll.Interval)
		if err != nil {
			return p, fmt.Errorf("job_poll.interval: %w", err)
		}
		if d <= 0 {
			return p, fmt.Errorf("job_poll.interval must be positive, got %s", d)
		}
		p.Interval = d
	}
	return p, nil
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
func Load() (Config, error) {
	c := Defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return c, nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}

// Package config loads application settings from an optional YAML file with
// environment variable overrides (REMINDERS_* keys).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/caarlos0/env/v11"
	"go.yaml.in/yaml/v3"

	"reminders/internal/notify"
)

const envPrefix = "REMINDERS_"

// Config holds all runtime settings. Precedence, lowest to highest:
// built-in defaults, YAML file, REMINDERS_* environment variables.
type Config struct {
	// DataDir holds the database and log file. Defaults to the platform's
	// per-user application data directory.
	DataDir string `yaml:"data_dir" env:"DATA_DIR"`

	// TickSeconds is how often the scheduler checks for due reminders.
	TickSeconds int `yaml:"tick_seconds" env:"TICK_SECONDS"`

	// ResyncSpec is a cron expression for reconciling the in-memory schedule
	// against the database in daemon mode.
	ResyncSpec string `yaml:"resync_spec" env:"RESYNC_SPEC"`

	Log    LogConfig     `yaml:"log" envPrefix:"LOG_"`
	Notify notify.Config `yaml:"notify" envPrefix:"NOTIFY_"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LEVEL"`
	// File, when set, receives JSON logs in addition to the console.
	File string `yaml:"file" env:"FILE"`
}

// Load reads the config file at path (missing file is fine, empty path means
// the default location under the data dir) and applies env overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DataDir:     DefaultDataDir(),
		TickSeconds: 1,
		ResyncSpec:  "@every 5m",
		Log:         LogConfig{Level: "info"},
	}

	if path == "" {
		path = filepath.Join(cfg.DataDir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// No config file, defaults plus env are enough.
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.TickSeconds < 1 {
		return nil, fmt.Errorf("tick_seconds must be at least 1, got %d", cfg.TickSeconds)
	}
	return cfg, nil
}

// TickInterval returns the scheduler tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickSeconds) * time.Second
}

// DBPath returns the SQLite database location under the data dir.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "reminders.db")
}

// DefaultDataDir returns the per-user application data directory for the
// current platform.
func DefaultDataDir() string {
	return defaultDataDirFor(runtime.GOOS)
}

func defaultDataDirFor(goos string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Reminders")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Reminders")
		}
		return filepath.Join(home, "AppData", "Roaming", "Reminders")
	default:
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "Reminders")
		}
		return filepath.Join(home, ".local", "share", "Reminders")
	}
}

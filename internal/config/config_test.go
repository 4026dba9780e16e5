package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.TickSeconds)
	assert.Equal(t, time.Second, cfg.TickInterval())
	assert.Equal(t, "@every 5m", cfg.ResyncSpec)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, filepath.Join(cfg.DataDir, "reminders.db"), cfg.DBPath())
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
data_dir: /tmp/reminders-test
tick_seconds: 5
log:
  level: debug
notify:
  strategy: webhook
  webhook_url: http://localhost:9999/hook
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reminders-test", cfg.DataDir)
	assert.Equal(t, 5*time.Second, cfg.TickInterval())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "webhook", cfg.Notify.Strategy)
	assert.Equal(t, "http://localhost:9999/hook", cfg.Notify.WebhookURL)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: 5\n"), 0o644))

	t.Setenv("REMINDERS_TICK_SECONDS", "2")
	t.Setenv("REMINDERS_NOTIFY_STRATEGY", "fallback")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.TickSeconds)
	assert.Equal(t, "fallback", cfg.Notify.Strategy)
}

func TestLoadRejectsBadTick(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: 0\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tick_seconds")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tick_seconds: [not a number\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestDefaultDataDirPerPlatform(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(home, "Library", "Application Support", "Reminders"),
		defaultDataDirFor("darwin"))

	t.Setenv("XDG_DATA_HOME", "/custom/xdg")
	assert.Equal(t, filepath.Join("/custom/xdg", "Reminders"), defaultDataDirFor("linux"))

	t.Setenv("APPDATA", `C:\Users\me\AppData\Roaming`)
	assert.Equal(t,
		filepath.Join(`C:\Users\me\AppData\Roaming`, "Reminders"),
		defaultDataDirFor("windows"))
}

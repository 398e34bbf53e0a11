package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "edusense.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
demo:
  enabled: false
  tick_interval: 500ms
  step_seconds: 20
notifications:
  enabled: true
  proximity_seconds: 40
  threshold: 70
settings:
  sensitivity: 80
  webcam: false
content:
  path: ./pack.json
logging:
  level: debug
  file: edusense.log
seed: 42
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.False(t, cfg.Demo.Enabled)
	assert.Equal(t, 500*time.Millisecond, cfg.Demo.TickInterval)
	assert.Equal(t, 20, cfg.Demo.StepSeconds)
	assert.Equal(t, 40, cfg.Notifications.ProximitySeconds)
	assert.Equal(t, 70.0, cfg.Notifications.Threshold)
	assert.Equal(t, 80, cfg.Settings.Sensitivity)
	assert.False(t, cfg.Settings.Webcam)
	assert.True(t, cfg.Settings.IndividualMode, "unset keys keep defaults")
	assert.Equal(t, "./pack.json", cfg.Content.Path)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "edusense.log", cfg.Logging.File)
	assert.Equal(t, uint64(42), cfg.Seed)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)

	cfg, err := Load("")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.NotificationsOn())
}

func TestLoad_DiscoversDotFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".edusense.yaml"), []byte("seed: 7\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint64(7), cfg.Seed)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "seed: 1\n")
	t.Setenv("EDUSENSE_SEED", "99")
	t.Setenv("EDUSENSE_NOTIFICATIONS_ENABLED", "false")
	t.Setenv("EDUSENSE_DEMO_STEP_SECONDS", "30")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, uint64(99), cfg.Seed)
	assert.False(t, cfg.Notifications.Enabled)
	assert.False(t, cfg.NotificationsOn())
	assert.Equal(t, 30, cfg.Demo.StepSeconds)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tick too fast", func(c *Config) { c.Demo.TickInterval = time.Millisecond }},
		{"zero step", func(c *Config) { c.Demo.StepSeconds = 0 }},
		{"step beyond lecture", func(c *Config) { c.Demo.StepSeconds = 4000 }},
		{"zero proximity", func(c *Config) { c.Notifications.ProximitySeconds = 0 }},
		{"threshold above 100", func(c *Config) { c.Notifications.Threshold = 101 }},
		{"sensitivity out of range", func(c *Config) { c.Settings.Sensitivity = 150 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "chatty" }},
	}

	require.NoError(t, Default().Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNotificationsOn_SettingsSwitch(t *testing.T) {
	cfg := Default()
	cfg.Settings.Notifications = false
	assert.False(t, cfg.NotificationsOn())
}

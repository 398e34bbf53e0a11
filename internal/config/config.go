// Package config loads EduSense settings from an optional YAML file and
// EDUSENSE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/abhisek/edusense/internal/logger"
	"github.com/abhisek/edusense/internal/playback"
	"github.com/abhisek/edusense/internal/settings"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "EDUSENSE"

// Config represents the complete application configuration
type Config struct {
	Demo          DemoConfig          `mapstructure:"demo"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Settings      settings.Settings   `mapstructure:"settings"`
	Content       ContentConfig       `mapstructure:"content"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	// Seed drives the signal generator. Zero means random.
	Seed uint64 `mapstructure:"seed"`
}

// DemoConfig controls simulated playback.
type DemoConfig struct {
	Enabled      bool          `mapstructure:"enabled"`
	TickInterval time.Duration `mapstructure:"tick_interval"`
	StepSeconds  int           `mapstructure:"step_seconds"`
}

// NotificationsConfig controls the help-available toasts.
type NotificationsConfig struct {
	Enabled          bool    `mapstructure:"enabled"`
	ProximitySeconds int     `mapstructure:"proximity_seconds"`
	Threshold        float64 `mapstructure:"threshold"`
}

// ContentConfig points at an optional content pack.
type ContentConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from path, or from .edusense.yaml in the working
// directory or $HOME when path is empty. A missing default file is not an
// error.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".edusense")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Demo: DemoConfig{
			Enabled:      true,
			TickInterval: playback.TickInterval,
			StepSeconds:  playback.Step,
		},
		Notifications: NotificationsConfig{
			Enabled:          true,
			ProximitySeconds: playback.DefaultProximity,
			Threshold:        playback.DefaultThreshold,
		},
		Settings: settings.Defaults(),
		Logging:  LoggingConfig{Level: "info"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("demo.enabled", d.Demo.Enabled)
	v.SetDefault("demo.tick_interval", d.Demo.TickInterval.String())
	v.SetDefault("demo.step_seconds", d.Demo.StepSeconds)

	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.proximity_seconds", d.Notifications.ProximitySeconds)
	v.SetDefault("notifications.threshold", d.Notifications.Threshold)

	v.SetDefault("settings.individual_mode", d.Settings.IndividualMode)
	v.SetDefault("settings.webcam", d.Settings.Webcam)
	v.SetDefault("settings.data_sharing", d.Settings.DataSharing)
	v.SetDefault("settings.sensitivity", d.Settings.Sensitivity)
	v.SetDefault("settings.facial_expression", d.Settings.FacialExpression)
	v.SetDefault("settings.gaze_tracking", d.Settings.GazeTracking)
	v.SetDefault("settings.head_pose", d.Settings.HeadPose)
	v.SetDefault("settings.notifications", d.Settings.Notifications)

	v.SetDefault("content.path", "")

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.file", "")

	v.SetDefault("seed", 0)
}

// Validate checks that all configuration values are valid
func (c *Config) Validate() error {
	if c.Demo.TickInterval < 100*time.Millisecond {
		return fmt.Errorf("demo.tick_interval must be at least 100ms")
	}
	if c.Demo.StepSeconds < 1 || c.Demo.StepSeconds > playback.Duration {
		return fmt.Errorf("demo.step_seconds must be between 1 and %d", playback.Duration)
	}

	if c.Notifications.ProximitySeconds < 1 {
		return fmt.Errorf("notifications.proximity_seconds must be at least 1")
	}
	if c.Notifications.Threshold < 0 || c.Notifications.Threshold > 100 {
		return fmt.Errorf("notifications.threshold must be between 0 and 100")
	}

	if err := c.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	return nil
}

// NotificationsOn reports whether help toasts may fire. Both the
// notifications section and the settings switch must allow it.
func (c *Config) NotificationsOn() bool {
	return c.Notifications.Enabled && c.Settings.Notifications
}

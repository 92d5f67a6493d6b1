package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the entire application configuration
type Config struct {
	Pixi    PixiConfig    `mapstructure:"pixi"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// PixiConfig contains settings for invoking the package manager
type PixiConfig struct {
	Binary  string `mapstructure:"binary"`
	Timeout string `mapstructure:"timeout"` // "0s" waits forever
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// Load loads configuration from the specified file path.
// An empty path yields the defaults.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return load(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Set defaults
	v.SetDefault("pixi.binary", "pixi")
	v.SetDefault("pixi.timeout", "0s")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.max_size_mb", 10)
	v.SetDefault("logging.max_backups", 3)
	v.SetDefault("logging.max_age_days", 28)
	return v
}

func load(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Pixi.Binary == "" {
		return fmt.Errorf("pixi.binary is required")
	}
	d, err := time.ParseDuration(c.Pixi.Timeout)
	if err != nil {
		return fmt.Errorf("invalid pixi.timeout: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("pixi.timeout must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// Valid levels
	default:
		return fmt.Errorf("invalid logging.level: %s", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "json", "text":
		// Valid formats
	default:
		return fmt.Errorf("invalid logging.format: %s", c.Logging.Format)
	}

	if c.Logging.MaxSizeMB < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAgeDays < 0 {
		return fmt.Errorf("logging rotation limits must not be negative")
	}

	return nil
}

// GetTimeout returns the info command timeout as time.Duration
func (c *PixiConfig) GetTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	if d < 0 {
		return 0
	}
	return d
}

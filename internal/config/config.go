package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	AppEnv          string        `mapstructure:"APP_ENV"`
	ServerAddress   string        `mapstructure:"SERVER_ADDRESS"`
	DBSource        string        `mapstructure:"DB_SOURCE"`
	SunAPIBaseURL   string        `mapstructure:"SUN_API_BASE_URL"`
	SunAPITimeout   time.Duration `mapstructure:"SUN_API_TIMEOUT"`
	DisplayTimezone string        `mapstructure:"DISPLAY_TIMEZONE"`
	TimestampLayout string        `mapstructure:"TIMESTAMP_LAYOUT"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
}

var defaults = map[string]any{
	"APP_ENV":          "development",
	"SERVER_ADDRESS":   "0.0.0.0:8080",
	"DB_SOURCE":        "",
	"SUN_API_BASE_URL": "https://api.sunrisesunset.io/json",
	"SUN_API_TIMEOUT":  "10s",
	"DISPLAY_TIMEZONE": "Local",
	"TIMESTAMP_LAYOUT": "Mon, 02 Jan 2006 15:04:05 MST",
	"LOG_LEVEL":        "info",
}

// LoadConfig reads configuration from app.env in path, if present, and
// overrides it with environment variables.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail late at request time.
func (c Config) Validate() error {
	if c.SunAPIBaseURL == "" {
		return fmt.Errorf("config: SUN_API_BASE_URL cannot be empty")
	}
	if c.SunAPITimeout <= 0 {
		return fmt.Errorf("config: SUN_API_TIMEOUT must be positive, got %s", c.SunAPITimeout)
	}
	if _, err := c.DisplayLocation(); err != nil {
		return err
	}
	return nil
}

// DisplayLocation resolves DISPLAY_TIMEZONE for formatting fetch timestamps.
func (c Config) DisplayLocation() (*time.Location, error) {
	if c.DisplayTimezone == "" || c.DisplayTimezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.DisplayTimezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid DISPLAY_TIMEZONE %q: %w", c.DisplayTimezone, err)
	}
	return loc, nil
}

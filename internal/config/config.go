// Package config provides configuration management for tubetop.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. The API key is always
// injected here; it is never embedded in source.
type Config struct {
	APIKey         string
	BaseURL        string
	RequestTimeout time.Duration
	VideoDelay     time.Duration
	Logging        LoggingConfig
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level string
	File  string
}

// Load reads configuration from an optional config file and TUBETOP_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvPrefix("TUBETOP")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	cfg := &Config{
		APIKey:         v.GetString("api_key"),
		BaseURL:        v.GetString("base_url"),
		RequestTimeout: v.GetDuration("request_timeout"),
		VideoDelay:     v.GetDuration("video_delay"),
		Logging: LoggingConfig{
			Level: v.GetString("log_level"),
			File:  v.GetString("log_file"),
		},
	}

	return cfg, nil
}

// Validate checks that the configuration can drive an extraction.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("missing API key: set TUBETOP_API_KEY or api_key in config.yaml")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("base_url", "")
	v.SetDefault("request_timeout", 30*time.Second)
	v.SetDefault("video_delay", 500*time.Millisecond)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
}

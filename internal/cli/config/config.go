// Package config loads guidelint configuration from guidelint.yml.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the guidelint configuration
type Config struct {
	Include   []string `mapstructure:"include"`
	Exclude   []string `mapstructure:"exclude"`
	Strict    bool     `mapstructure:"strict"`
	Format    string   `mapstructure:"format"`
	Strengths []string `mapstructure:"strengths"`
}

// Load loads the configuration from guidelint.yml or guidelint.yaml,
// looking first in the corpus root and then in the current directory.
// A missing config file is not an error; defaults apply.
func Load(root string) (*Config, error) {
	v := viper.New()

	v.SetDefault("include", []string{"**/*.md"})
	v.SetDefault("exclude", []string{})
	v.SetDefault("strict", false)
	v.SetDefault("format", "text")
	v.SetDefault("strengths", []string{})

	v.SetConfigName("guidelint")
	v.SetConfigType("yaml")
	if root != "" {
		v.AddConfigPath(root)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("GUIDELINT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found - use defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	switch cfg.Format {
	case "text", "json":
	default:
		return fmt.Errorf("format must be 'text' or 'json', got: %s", cfg.Format)
	}

	for _, s := range cfg.Strengths {
		if s == "" {
			return fmt.Errorf("strengths must not contain empty literals")
		}
	}

	return nil
}

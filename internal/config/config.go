// Package config loads CLI settings from EDUCREATE_* environment variables.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name, e.g. EDUCREATE_LOG_LEVEL.
const Prefix = "educreate"

// Output formats accepted for command results.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds the settings shared by every command.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console" validate:"oneof=console json"`

	// DefaultStyle is used by "config new" when no --style is given.
	DefaultStyle string `envconfig:"DEFAULT_STYLE" default:"classic" validate:"required"`
	// MaxRecommendations caps the number of recommended templates.
	MaxRecommendations int    `envconfig:"MAX_RECOMMENDATIONS" default:"6" validate:"min=1"`
	Output             string `envconfig:"OUTPUT" default:"text" validate:"oneof=text json"`
}

var validate = validator.New()

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the values against their validate tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

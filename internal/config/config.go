// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the dashboard's runtime settings.
type Config struct {
	Port     string `envconfig:"PORT" default:":8080"`
	DataPath string `envconfig:"DATA_PATH" default:"./day.csv"`
	WebDir   string `envconfig:"WEB_DIR" default:"./web"`
	Debug    bool   `envconfig:"DEBUG" default:"false"`
}

// Load populates Config from DASHBOARD_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("dashboard", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

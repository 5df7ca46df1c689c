package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all runtime configuration, sourced from environment
// variables (a .env file is loaded first for local runs).
type AppConfig struct {
	Web      WebConfig
	Database DatabaseConfig
	Logger   LoggerConfig
}

type WebConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8000"`
}

// DatabaseConfig carries the document store connection settings. Both values
// are optional: when either is missing the store starts degraded and the
// diagnostic endpoint reports it, but the process still serves requests.
type DatabaseConfig struct {
	URL  string `envconfig:"DATABASE_URL"`
	Name string `envconfig:"DATABASE_NAME"`
}

type LoggerConfig struct {
	Mode       string `envconfig:"LOGGER_MODE" default:"development"`
	FileEnable bool   `envconfig:"LOGGER_FILE_ENABLE" default:"false"`
	Filename   string `envconfig:"LOGGER_FILENAME" default:"ogxsupply.log"`
}

// Load builds an AppConfig from the process environment.
func Load() (*AppConfig, error) {
	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}
	return &cfg, nil
}

// Listen returns the host:port address for the HTTP server.
func (c *AppConfig) Listen() string {
	return fmt.Sprintf("%s:%d", c.Web.Host, c.Web.Port)
}

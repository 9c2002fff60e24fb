// Package config loads the assistant's settings from environment variables and an optional YAML
// file.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the complete configuration of the assistant and its REST front-end.
type Config struct {
	// Environment selects the logger flavour, "development" or "production".
	Environment string `env:"ENVIRONMENT" env-default:"production" yaml:"environment"`
	// LogLevel is the minimum level of log messages.
	LogLevel string `env:"LOG_LEVEL" env-default:"warn" yaml:"logLevel"`

	HTTP HTTP `yaml:"http"`

	Database Database `yaml:"database"`
}

// HTTP configures the REST front-end.
type HTTP struct {
	Port int `env:"PORT" env-default:"8080" yaml:"port"`
	// Logging turns gin's request log on or off.
	Logging string `env:"GIN_LOGGING" env-default:"on" yaml:"logging"`
}

// Database configures the MySQL database that contacts can be imported from.
type Database struct {
	Host     string `env:"DBHOST" yaml:"host"`
	User     string `env:"DBUSER" yaml:"user"`
	Password string `env:"DBPWD" yaml:"password"`
	Name     string `env:"DBNAME" env-default:"test" yaml:"name"`
}

// Configured reports whether enough is known to connect to the database.
func (d Database) Configured() bool {
	return d.Host != ""
}

// Load reads the configuration. If configPath is empty only environment variables and defaults
// are used; otherwise the YAML file is read first and environment variables override it.
func Load(configPath string) (*Config, error) {
	var cfg Config
	var err error
	if configPath == "" {
		err = cleanenv.ReadEnv(&cfg)
	} else {
		err = cleanenv.ReadConfig(configPath, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

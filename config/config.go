package config

import (
	"fmt"
	"os"
	"time"

	structValidator "github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	CONFIG_PATH = "./res/config.yaml"

	DefaultShutdownTimeout = 15 * time.Second
)

// ServiceConfig holds the configuration for the service.
type ServiceConfig struct {
	ServiceName     string           `yaml:"service_name" validate:"required"`
	LogLevel        string           `yaml:"loglevel" validate:"required"`
	Host            string           `yaml:"host" validate:"required"`
	Port            string           `yaml:"port" validate:"required"`
	ShutdownTimeout time.Duration    `yaml:"shutdown_timeout" validate:"gte=0"`
	Downstream      DownstreamConfig `yaml:"downstream"`
}

// DownstreamConfig locates the signup API the form is forwarded to.
type DownstreamConfig struct {
	// BaseURL is the API origin; the signup path is appended to it.
	BaseURL string        `yaml:"base_url" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// ReadLocalConfig reads the service configuration from a YAML file at the specified path.
func ReadLocalConfig(configPath string) (*ServiceConfig, error) {
	config := &ServiceConfig{}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	err = yaml.Unmarshal(yamlFile, config)
	if err != nil {
		return nil, err
	}

	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = DefaultShutdownTimeout
	}

	return config, nil
}

// Validate checks cfg against its validate tags.
func Validate(validator *structValidator.Validate, cfg *ServiceConfig) error {
	if err := validator.Struct(cfg); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

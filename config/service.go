package config

import (
	"fmt"

	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/observability"
)

// ServiceConfig holds the settings every program of this module shares.
// Programs embed it in their own config structs:
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    REST rest.Config     `yaml:"rest" mapstructure:"rest"`
//	}
type ServiceConfig struct {
	Name      string               `yaml:"name" mapstructure:"name" validate:"required"`
	Logging   logger.Config        `yaml:"logging" mapstructure:"logging"`
	Telemetry observability.Config `yaml:"telemetry" mapstructure:"telemetry"`
}

// GetServiceConfig returns the embedded ServiceConfig.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults fills zero-value fields. Embedding structs that override it call
// c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Telemetry.ServiceName == "" {
		def := observability.DefaultConfig(c.Name)
		def.Endpoint = c.Telemetry.Endpoint
		if c.Telemetry.SampleRate != 0 {
			def.SampleRate = c.Telemetry.SampleRate
		}
		if c.Telemetry.Interval != 0 {
			def.Interval = c.Telemetry.Interval
		}
		c.Telemetry = def
	}
}

// Validate checks the shared fields.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	return nil
}

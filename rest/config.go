package rest

import (
	"strings"
	"time"

	"github.com/kbukum/gdax/httpclient"
)

// Base URLs of the two exchange environments.
const (
	ProductionURL = "https://api.gdax.com"
	SandboxURL    = "https://api-public.sandbox.gdax.com"
)

// Environment names an exchange environment.
type Environment string

const (
	Production Environment = "production"
	Sandbox    Environment = "sandbox"
)

// Config configures a Client.
type Config struct {
	// Environment selects the base URL. Defaults to production.
	Environment Environment `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=production sandbox"`

	// BaseURL overrides the environment's base URL, e.g. for a local fake.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout bounds each request. Zero means none; use the context instead.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout" validate:"gte=0"`

	TLS *httpclient.TLSConfig `yaml:"tls" mapstructure:"tls"`

	MaxIdleConnsPerHost int `yaml:"max_idle_conns_per_host" mapstructure:"max_idle_conns_per_host" validate:"gte=0"`
}

// ApplyDefaults fills zero-value fields.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = Production
	}
}

// URL returns the base URL requests are sent to, without a trailing slash.
func (c *Config) URL() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Environment == Sandbox {
		return SandboxURL
	}
	return ProductionURL
}

func (c *Config) transport() httpclient.Config {
	return httpclient.Config{
		Name:                string(c.Environment),
		Timeout:             c.Timeout,
		TLS:                 c.TLS,
		MaxIdleConnsPerHost: c.MaxIdleConnsPerHost,
	}
}

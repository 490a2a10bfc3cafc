// Package config loads and validates program configuration.
//
// Load merges, from lowest to highest precedence, an optional YAML file, a .env
// file, GDAX_-prefixed environment variables, and explicitly set command-line
// flags, then unmarshals the result with viper:
//
//	var cfg Config
//	err := config.Load("gdax-ticker", &cfg,
//	    config.WithFlags(flags, map[string]string{"base-url": "rest.base_url"}))
//
// Environment variables map onto nested keys by underscores, so
// GDAX_REST_BASE_URL sets rest.base_url. Validate checks `validate` struct tags
// with validator/v10.
package config

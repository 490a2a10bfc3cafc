package bootstrap

import (
	"github.com/kbukum/gdax/config"
)

// Config is the constraint for program configuration types. Any struct that
// embeds config.ServiceConfig satisfies it through promoted methods.
//
//	type Config struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    REST rest.Config     `yaml:"rest" mapstructure:"rest"`
//	}
//
//	app, err := bootstrap.NewApp(&cfg)
type Config interface {
	GetServiceConfig() *config.ServiceConfig
	ApplyDefaults()
	Validate() error
}

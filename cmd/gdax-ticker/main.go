// Command gdax-ticker prints the exchange clock skew and the last ticker of
// every listed product.
//
//	gdax-ticker [--env sandbox] [--base-url URL] [--log-level debug] [--otlp-endpoint HOST:PORT]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/kbukum/gdax/bootstrap"
	"github.com/kbukum/gdax/config"
	"github.com/kbukum/gdax/rest"
)

const name = "gdax-ticker"

// Config is the program configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	REST                 rest.Config `yaml:"rest" mapstructure:"rest"`
}

func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.REST.ApplyDefaults()
}

var flagKeys = map[string]string{
	"env":           "rest.environment",
	"base-url":      "rest.base_url",
	"timeout":       "rest.timeout",
	"log-level":     "logging.level",
	"otlp-endpoint": "telemetry.endpoint",
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("env", string(rest.Production), "exchange environment: production or sandbox")
	fs.String("base-url", "", "override the environment's base URL")
	fs.Duration("timeout", 10*time.Second, "per-request timeout")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	fs.String("otlp-endpoint", "", "OTLP/HTTP collector endpoint; empty disables telemetry")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := Config{ServiceConfig: config.ServiceConfig{Name: name}}
	if err := config.Load(name, &cfg, config.WithFlags(fs, flagKeys)); err != nil {
		return err
	}

	app, err := bootstrap.NewApp(&cfg)
	if err != nil {
		return err
	}
	return app.RunTask(ctx, func(ctx context.Context) error {
		client, err := rest.New(cfg.REST, rest.WithLogger(app.Logger))
		if err != nil {
			return err
		}
		defer client.Close()
		return printTickers(ctx, client, out, time.Now)
	})
}

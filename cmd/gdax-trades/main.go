// Command gdax-trades downloads a product's trade history, newest first, to a
// CSV or parquet file.
//
//	gdax-trades --product BTC-USD [--start 1000] [--out BTC-USD-1000.csv] [--format csv|parquet]
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
	"github.com/kbukum/gdax/resilience"
	"github.com/kbukum/gdax/rest"
)

const name = "gdax-trades"

// Config is the program configuration.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
	REST                 rest.Config            `yaml:"rest" mapstructure:"rest"`
	Retry                resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`
	Download             Download               `yaml:"download" mapstructure:"download"`
}

// Download selects what to fetch and where to write it.
type Download struct {
	Product string `yaml:"product" mapstructure:"product" validate:"required"`
	// Start begins the walk below this trade id. Zero starts at the newest trade.
	Start  uint64  `yaml:"start" mapstructure:"start"`
	Limit  int     `yaml:"limit" mapstructure:"limit" validate:"gte=0,lte=100"`
	Out    string  `yaml:"out" mapstructure:"out"`
	Format string  `yaml:"format" mapstructure:"format" validate:"oneof=csv parquet"`
	Codec  string  `yaml:"codec" mapstructure:"codec" validate:"omitempty,oneof=none snappy gzip"`
	Rate   float64 `yaml:"rate" mapstructure:"rate" validate:"gt=0"`
}

func (c *Config) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	c.REST.ApplyDefaults()
	if c.Retry.MaxAttempts == 0 {
		c.Retry = resilience.DefaultRetryConfig()
	}
	if c.Download.Format == "" {
		c.Download.Format = "csv"
	}
	if c.Download.Rate == 0 {
		c.Download.Rate = 3
	}
	if c.Download.Out == "" {
		c.Download.Out = defaultOut(c.Download)
	}
}

// defaultOut names the output file after the product and start id; the start
// part is empty when the walk starts at the newest trade.
func defaultOut(d Download) string {
	start := ""
	if d.Start > 0 {
		start = fmt.Sprint(d.Start)
	}
	return fmt.Sprintf("%s-%s.%s", d.Product, start, d.Format)
}

var flagKeys = map[string]string{
	"product":       "download.product",
	"start":         "download.start",
	"limit":         "download.limit",
	"out":           "download.out",
	"format":        "download.format",
	"codec":         "download.codec",
	"rate":          "download.rate",
	"env":           "rest.environment",
	"base-url":      "rest.base_url",
	"timeout":       "rest.timeout",
	"attempts":      "retry.max_attempts",
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
	fs.String("product", "", "product id, e.g. BTC-USD")
	fs.Uint64("start", 0, "start below this trade id; 0 starts at the newest trade")
	fs.Int("limit", 0, "page size, at most 100; 0 uses the exchange default")
	fs.String("out", "", "output file; defaults to {product}-{start}.{format}")
	fs.String("format", "csv", "output format: csv or parquet")
	fs.String("codec", "", "parquet compression: none, snappy or gzip")
	fs.Float64("rate", 3, "pages per second")
	fs.String("env", string(rest.Production), "exchange environment: production or sandbox")
	fs.String("base-url", "", "override the environment's base URL")
	fs.Duration("timeout", 30*time.Second, "per-request timeout")
	fs.Int("attempts", 5, "attempts per page, including the first")
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
		return download(ctx, client, cfg, app.Logger, out)
	})
}

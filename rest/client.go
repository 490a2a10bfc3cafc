package rest

import (
	"github.com/kbukum/gdax/config"
	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/httpclient"
	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/observability"
	"github.com/kbukum/gdax/version"
)

// Client holds the base URL and the pooled transport. It is safe for concurrent use.
type Client struct {
	baseURL   string
	http      *httpclient.Adapter
	log       *logger.Logger
	metrics   *observability.Metrics
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l.WithComponent("rest") }
}

// WithHTTPClient replaces the transport built from Config.
func WithHTTPClient(a *httpclient.Adapter) Option {
	return func(c *Client) { c.http = a }
}

// WithMetrics replaces the instruments created on the global otel meter.
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds a client. It performs no network I/O. An invalid config or a
// transport that cannot be built is reported as a CONNECTOR_ERROR.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := config.Validate(&cfg); err != nil {
		return nil, errors.Connector(err)
	}

	c := &Client{
		baseURL:   cfg.URL(),
		log:       logger.Nop(),
		userAgent: version.UserAgent(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.http == nil {
		a, err := httpclient.New(cfg.transport())
		if err != nil {
			return nil, errors.Connector(err)
		}
		c.http = a
	}
	if c.metrics == nil {
		// A nil Metrics records nothing.
		c.metrics, _ = observability.NewMetrics(observability.Meter())
	}

	return c, nil
}

// NewProduction returns a client for the production exchange.
func NewProduction(opts ...Option) (*Client, error) {
	return New(Config{Environment: Production}, opts...)
}

// NewSandbox returns a client for the sandbox exchange.
func NewSandbox(opts ...Option) (*Client, error) {
	return New(Config{Environment: Sandbox}, opts...)
}

// BaseURL returns the URL every request target is appended to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle pooled connections.
func (c *Client) Close() {
	c.http.Close()
}

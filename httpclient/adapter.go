package httpclient

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Adapter sends requests over one pooled HTTP transport.
type Adapter struct {
	httpClient *http.Client
	config     Config
}

// New creates an adapter. It builds the transport and TLS settings but does no I/O.
func New(cfg Config) (*Adapter, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = cfg.MaxIdleConnsPerHost

	tlsCfg, err := cfg.TLS.Build()
	if err != nil {
		return nil, err
	}
	if tlsCfg != nil {
		transport.TLSClientConfig = tlsCfg
	}

	return &Adapter{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
	}, nil
}

// Do sends req and returns the buffered response. A non-2xx status returns both the
// response and a classified *Error.
func (c *Adapter) Do(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(ctx, fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}

	if classErr := ClassifyStatusCode(resp.StatusCode, body); classErr != nil {
		return result, classErr
	}

	return result, nil
}

// Unwrap returns the underlying *http.Client.
func (c *Adapter) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle pooled connections.
func (c *Adapter) Close() {
	c.httpClient.CloseIdleConnections()
}

// Config returns the adapter's configuration after defaults.
func (c *Adapter) Config() Config {
	return c.config
}

func (c *Adapter) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	body := io.Reader(http.NoBody)
	if req.Body != "" {
		body = strings.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("create request: %v", err))
	}
	httpReq.ContentLength = int64(len(req.Body))

	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	return httpReq, nil
}

func classifyTransportError(ctx context.Context, err error) *Error {
	switch {
	case stderrors.Is(ctx.Err(), context.Canceled):
		return NewCanceledError(err)
	case ctx.Err() != nil:
		return NewTimeoutError(err)
	}
	var te interface{ Timeout() bool }
	if stderrors.As(err, &te) && te.Timeout() {
		return NewTimeoutError(err)
	}
	return NewConnectionError(err)
}

func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}

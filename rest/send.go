package rest

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/httpclient"
	"github.com/kbukum/gdax/logger"
	"github.com/kbukum/gdax/observability"
)

// Send performs the call described by e and decodes the response.
//
// The request URI is the base URL followed by the request target. A URI that does
// not parse fails with URI_ERROR before any I/O. Network failures and non-2xx
// responses fail with TRANSPORT_ERROR, and a body that does not decode fails with
// DECODE_ERROR. Cancelling ctx aborts the call.
//
// Requests without a body carry a zero content length, which net/http sends
// by omitting the Content-Length header on GET.
func Send[T any](ctx context.Context, c *Client, e Endpoint[T]) (T, error) {
	var zero T
	req := e.CreateRequest()
	target := req.Target()

	ctx, span := observability.StartSpan(ctx, "gdax "+req.describe(),
		attribute.String(observability.AttrMethod, req.Method),
		attribute.String(observability.AttrTarget, target),
	)
	start := time.Now()

	body, status, err := c.do(ctx, req, target)
	if err == nil {
		var v T
		if v, err = e.Decode(body); err == nil {
			c.finish(ctx, span, req, target, status, start, nil)
			return v, nil
		}
		if !errors.IsDecode(err) {
			err = errors.Decode(err)
		}
	}

	c.finish(ctx, span, req, target, status, start, err)
	return zero, err
}

// Result is the outcome of an asynchronous Send.
type Result[T any] struct {
	Value T
	Err   error
}

// SendAsync runs Send on its own goroutine. The returned channel receives exactly
// one Result and is then closed.
func SendAsync[T any](ctx context.Context, c *Client, e Endpoint[T]) <-chan Result[T] {
	ch := make(chan Result[T], 1)
	go func() {
		defer close(ch)
		v, err := Send(ctx, c, e)
		ch <- Result[T]{Value: v, Err: err}
	}()
	return ch
}

func (c *Client) do(ctx context.Context, req Request, target string) ([]byte, int, error) {
	raw := c.baseURL + target
	if _, err := url.ParseRequestURI(raw); err != nil {
		return nil, 0, errors.URI(raw, err)
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	resp, err := c.http.Do(ctx, httpclient.Request{
		Method: method,
		URL:    raw,
		Body:   req.Body,
		Headers: map[string]string{
			"User-Agent": c.userAgent,
			"Accept":     "application/json",
		},
	})
	if err != nil {
		if resp != nil {
			return resp.Body, resp.StatusCode, errors.Status(resp.StatusCode, resp.Body, err)
		}
		return nil, 0, errors.Transport(httpclient.IsRetryable(err), err)
	}
	return resp.Body, resp.StatusCode, nil
}

// finish records the outcome of a call on its span, metrics and log, and ends the span.
func (c *Client) finish(ctx context.Context, span trace.Span, req Request, target string, status int, start time.Time, err error) {
	elapsed := time.Since(start)
	path := req.Route.Path()
	c.metrics.RecordRequest(ctx, req.Method, path, status, elapsed)

	fields := logger.Fields(
		logger.FieldMethod, req.Method,
		logger.FieldTarget, target,
		logger.FieldStatus, status,
	)
	if status > 0 {
		span.SetAttributes(attribute.Int(observability.AttrStatusCode, status))
	}

	if err != nil {
		code := "UNKNOWN"
		if e, ok := errors.As(err); ok {
			code = string(e.Code)
		}
		span.SetAttributes(attribute.String(observability.AttrErrorCode, code))
		c.metrics.RecordError(ctx, code, path)
		fields[logger.FieldError] = err.Error()
		c.log.Warn("request failed", logger.MergeWithDuration(fields, elapsed))
	} else {
		c.log.Debug("request", logger.MergeWithDuration(fields, elapsed))
	}
	observability.EndSpan(span, err)
}

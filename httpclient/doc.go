// Package httpclient is the pooled HTTP transport used by the GDAX client.
//
// An Adapter owns one *http.Transport and is safe for concurrent use. Do sends a
// single request, buffers the whole response body, closes it, and classifies
// non-2xx statuses and network failures into *Error values. Cancelling the
// request context aborts the in-flight call.
//
//	a, err := httpclient.New(httpclient.Config{})
//	resp, err := a.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    URL:    "https://api.gdax.com/time",
//	})
//
// The adapter never retries; retry policy belongs to the caller.
package httpclient

package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Error is the error type returned by every package of this module.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable reports whether repeating the same request may succeed.
	Retryable bool `json:"retryable"`
	// HTTPStatus is the status the exchange answered with, 0 when no response was read.
	HTTPStatus int `json:"http_status,omitempty"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates an Error with the given code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Connector creates an Error for a transport that could not be built.
func Connector(cause error) *Error {
	return &Error{
		Code: ErrCodeConnector, Message: "unable to build the HTTP transport",
		Cause: cause,
	}
}

// URI creates an Error for a request URI that does not parse.
func URI(raw string, cause error) *Error {
	return &Error{
		Code: ErrCodeURI, Message: fmt.Sprintf("invalid request URI %q", raw),
		Details: map[string]any{"uri": raw}, Cause: cause,
	}
}

// Transport creates an Error for a request that failed before a response was read.
func Transport(retryable bool, cause error) *Error {
	return &Error{
		Code: ErrCodeTransport, Message: "request failed",
		Retryable: retryable, Cause: cause,
	}
}

// Status creates an Error for a non-2xx response. Too-many-requests and 5xx statuses
// are retryable. The body is kept in Details under "body".
func Status(status int, body []byte, cause error) *Error {
	e := &Error{
		Code: ErrCodeTransport, Message: fmt.Sprintf("exchange answered HTTP %d", status),
		HTTPStatus: status,
		Retryable:  status == http.StatusTooManyRequests || status >= 500,
		Cause:      cause,
	}
	if len(body) > 0 {
		e.WithDetail("body", string(body))
	}
	return e
}

// Decode creates an Error for a response body that could not be decoded.
func Decode(cause error) *Error {
	return &Error{
		Code: ErrCodeDecode, Message: "unable to decode response",
		Cause: cause,
	}
}

// Decodef creates a decode Error with a formatted message and no cause.
func Decodef(format string, args ...any) *Error {
	return &Error{Code: ErrCodeDecode, Message: fmt.Sprintf(format, args...)}
}

// InvalidConfig creates an Error for a configuration that failed validation.
func InvalidConfig(message string) *Error {
	return &Error{Code: ErrCodeInvalidConfig, Message: message}
}

// As returns the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether err's chain holds an *Error with the given code.
func HasCode(err error, code ErrorCode) bool {
	e, ok := As(err)
	return ok && e.Code == code
}

// IsConnector checks if an error is a connector error.
func IsConnector(err error) bool { return HasCode(err, ErrCodeConnector) }

// IsURI checks if an error is a URI error.
func IsURI(err error) bool { return HasCode(err, ErrCodeURI) }

// IsTransport checks if an error is a transport error.
func IsTransport(err error) bool { return HasCode(err, ErrCodeTransport) }

// IsDecode checks if an error is a decode error.
func IsDecode(err error) bool { return HasCode(err, ErrCodeDecode) }

// IsRetryable checks if an error is marked retryable.
func IsRetryable(err error) bool {
	e, ok := As(err)
	return ok && e.Retryable
}

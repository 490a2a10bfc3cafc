package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies transport failures.
type ErrorCode int

const (
	// ErrCodeTimeout is a deadline hit while connecting or waiting for a response.
	ErrCodeTimeout ErrorCode = iota
	// ErrCodeCanceled is a request aborted by its context.
	ErrCodeCanceled
	// ErrCodeConnection is a dial, DNS, TLS or read failure.
	ErrCodeConnection
	// ErrCodeNotFound is a 404 response.
	ErrCodeNotFound
	// ErrCodeRateLimit is a 429 response.
	ErrCodeRateLimit
	// ErrCodeClient is any other 4xx response, or a request that could not be built.
	ErrCodeClient
	// ErrCodeServer is a 5xx or otherwise unexpected response.
	ErrCodeServer
)

var codeNames = map[ErrorCode]string{
	ErrCodeTimeout:    "timeout",
	ErrCodeCanceled:   "canceled",
	ErrCodeConnection: "connection",
	ErrCodeNotFound:   "not_found",
	ErrCodeRateLimit:  "rate_limit",
	ErrCodeClient:     "client",
	ErrCodeServer:     "server",
}

// String returns the error code name.
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "unknown"
}

// Error is a classified transport failure.
type Error struct {
	// StatusCode is the HTTP status, 0 when no response was received.
	StatusCode int
	Code       ErrorCode
	Message    string
	Retryable  bool
	// Body is the raw response body, nil when no response was received.
	Body []byte
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("httpclient: %s (HTTP %d): %s", e.Code, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("httpclient: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(code ErrorCode, retryable bool, err error) *Error {
	return &Error{Code: code, Message: err.Error(), Retryable: retryable, Err: err}
}

// NewTimeoutError wraps a deadline failure. It is retryable.
func NewTimeoutError(err error) *Error { return wrap(ErrCodeTimeout, true, err) }

// NewCanceledError wraps a cancelled request. It is never retried.
func NewCanceledError(err error) *Error { return wrap(ErrCodeCanceled, false, err) }

// NewConnectionError wraps a network failure. It is retryable.
func NewConnectionError(err error) *Error { return wrap(ErrCodeConnection, true, err) }

// NewValidationError reports a request that could not be built.
func NewValidationError(msg string) *Error {
	return &Error{Code: ErrCodeClient, Message: msg}
}

// ClassifyStatusCode maps a non-2xx status to an *Error. It returns nil for 2xx.
// 429 and 5xx are retryable.
func ClassifyStatusCode(statusCode int, body []byte) *Error {
	if statusCode >= 200 && statusCode < 300 {
		return nil
	}

	e := &Error{
		StatusCode: statusCode,
		Message:    statusText(statusCode),
		Body:       body,
	}
	switch {
	case statusCode == http.StatusNotFound:
		e.Code = ErrCodeNotFound
	case statusCode == http.StatusTooManyRequests:
		e.Code, e.Retryable = ErrCodeRateLimit, true
	case statusCode >= 400 && statusCode < 500:
		e.Code = ErrCodeClient
	case statusCode >= 500:
		e.Code, e.Retryable = ErrCodeServer, true
	default:
		e.Code = ErrCodeServer
	}
	return e
}

func statusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", code)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// IsTimeout reports whether err is a timeout.
func IsTimeout(err error) bool { return hasCode(err, ErrCodeTimeout) }

// IsCanceled reports whether err is a cancelled request.
func IsCanceled(err error) bool { return hasCode(err, ErrCodeCanceled) }

// IsConnection reports whether err is a network failure.
func IsConnection(err error) bool { return hasCode(err, ErrCodeConnection) }

// IsNotFound reports whether err is a 404.
func IsNotFound(err error) bool { return hasCode(err, ErrCodeNotFound) }

// IsRateLimit reports whether err is a 429.
func IsRateLimit(err error) bool { return hasCode(err, ErrCodeRateLimit) }

// IsServerError reports whether err is a 5xx.
func IsServerError(err error) bool { return hasCode(err, ErrCodeServer) }

// IsRetryable reports whether err is a retryable transport failure.
func IsRetryable(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Retryable
}

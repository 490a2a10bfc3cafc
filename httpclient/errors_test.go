package httpclient

import (
	"fmt"
	"testing"
)

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeCanceled, "canceled"},
		{ErrCodeConnection, "connection"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeClient, "client"},
		{ErrCodeServer, "server"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := ClassifyStatusCode(404, nil)
	want := "httpclient: not_found (HTTP 404): Not Found"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := NewConnectionError(fmt.Errorf("connection refused"))
	want2 := "httpclient: connection: connection refused"
	if got := e2.Error(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("dial tcp: refused")
	outer := NewConnectionError(inner)
	if outer.Unwrap() != inner {
		t.Error("Unwrap did not return inner error")
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		code    int
		wantNil bool
		errCode ErrorCode
		retry   bool
	}{
		{200, true, 0, false},
		{201, true, 0, false},
		{204, true, 0, false},
		{302, false, ErrCodeServer, false},
		{400, false, ErrCodeClient, false},
		{401, false, ErrCodeClient, false},
		{404, false, ErrCodeNotFound, false},
		{429, false, ErrCodeRateLimit, true},
		{500, false, ErrCodeServer, true},
		{502, false, ErrCodeServer, true},
		{503, false, ErrCodeServer, true},
		{599, false, ErrCodeServer, true},
	}
	for _, tt := range tests {
		e := ClassifyStatusCode(tt.code, []byte("body"))
		if tt.wantNil {
			if e != nil {
				t.Errorf("ClassifyStatusCode(%d): expected nil, got %v", tt.code, e)
			}
			continue
		}
		if e == nil {
			t.Errorf("ClassifyStatusCode(%d): expected error, got nil", tt.code)
			continue
		}
		if e.Code != tt.errCode {
			t.Errorf("ClassifyStatusCode(%d): code = %v, want %v", tt.code, e.Code, tt.errCode)
		}
		if e.Retryable != tt.retry {
			t.Errorf("ClassifyStatusCode(%d): retryable = %v, want %v", tt.code, e.Retryable, tt.retry)
		}
		if e.StatusCode != tt.code || string(e.Body) != "body" {
			t.Errorf("ClassifyStatusCode(%d): status/body = %d/%q", tt.code, e.StatusCode, e.Body)
		}
	}
}

func TestIsHelpers(t *testing.T) {
	timeout := NewTimeoutError(fmt.Errorf("timed out"))
	canceled := NewCanceledError(fmt.Errorf("context canceled"))
	conn := NewConnectionError(fmt.Errorf("connection refused"))
	notFound := ClassifyStatusCode(404, nil)
	rateLimit := ClassifyStatusCode(429, nil)
	server := ClassifyStatusCode(500, nil)
	validation := NewValidationError("bad")

	if !IsTimeout(timeout) {
		t.Error("IsTimeout should match timeout error")
	}
	if !IsCanceled(canceled) {
		t.Error("IsCanceled should match canceled error")
	}
	if !IsConnection(conn) {
		t.Error("IsConnection should match connection error")
	}
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should match not-found error")
	}
	if !IsRateLimit(rateLimit) {
		t.Error("IsRateLimit should match rate-limit error")
	}
	if !IsServerError(server) {
		t.Error("IsServerError should match server error")
	}
	if IsServerError(fmt.Errorf("plain")) {
		t.Error("IsServerError should not match a plain error")
	}

	for name, err := range map[string]error{"timeout": timeout, "connection": conn, "rate limit": rateLimit, "server": server} {
		if !IsRetryable(err) {
			t.Errorf("%s should be retryable", name)
		}
	}
	for name, err := range map[string]error{"canceled": canceled, "not found": notFound, "validation": validation} {
		if IsRetryable(err) {
			t.Errorf("%s should not be retryable", name)
		}
	}
}

package rest

import (
	stderrors "errors"
	"testing"
	"time"

	"github.com/kbukum/gdax/errors"
	"github.com/kbukum/gdax/httpclient"
)

func errorsAs(err error, target any) bool {
	return stderrors.As(err, target)
}

func TestNewProduction(t *testing.T) {
	c, err := NewProduction()
	if err != nil {
		t.Fatalf("NewProduction: %v", err)
	}
	defer c.Close()
	if c.BaseURL() != ProductionURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL(), ProductionURL)
	}
}

func TestNewSandbox(t *testing.T) {
	c, err := NewSandbox()
	if err != nil {
		t.Fatalf("NewSandbox: %v", err)
	}
	defer c.Close()
	if c.BaseURL() != SandboxURL {
		t.Errorf("BaseURL = %q, want %q", c.BaseURL(), SandboxURL)
	}
}

func TestConfig_URL(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{}, ProductionURL},
		{"production", Config{Environment: Production}, ProductionURL},
		{"sandbox", Config{Environment: Sandbox}, SandboxURL},
		{"override", Config{Environment: Sandbox, BaseURL: "http://127.0.0.1:9000/"}, "http://127.0.0.1:9000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.URL(); got != tt.want {
				t.Errorf("URL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"environment", Config{Environment: "staging"}},
		{"timeout", Config{Timeout: -time.Second}},
		{"idle conns", Config{MaxIdleConnsPerHost: -1}},
		{"tls", Config{TLS: &httpclient.TLSConfig{CAFile: "/nonexistent/ca.pem"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if !errors.IsConnector(err) {
				t.Fatalf("expected CONNECTOR_ERROR, got %v", err)
			}
		})
	}
}

func TestWithHTTPClient(t *testing.T) {
	a, err := httpclient.New(httpclient.Config{Name: "custom"})
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(Config{}, WithHTTPClient(a))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != a {
		t.Error("WithHTTPClient adapter not used")
	}
}

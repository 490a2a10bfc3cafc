package version

import (
	"runtime/debug"
	"sync"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origRead := Version, readBuild
	return func() {
		Version = origVersion
		readBuild = origRead
		readOnce = sync.Once{}
		buildVersion = ""
	}
}

func TestGet_LDFlags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.2.0"

	if got := Get(); got != "1.2.0" {
		t.Errorf("expected 1.2.0, got %q", got)
	}
	if got := UserAgent(); got != "gdax-go/1.2.0" {
		t.Errorf("expected gdax-go/1.2.0, got %q", got)
	}
}

func TestGet_BuildInfoDependency(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	readOnce = sync.Once{}
	readBuild = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Main: debug.Module{Path: "example.com/app", Version: "(devel)"},
			Deps: []*debug.Module{
				{Path: "github.com/rs/zerolog", Version: "v1.34.0"},
				{Path: ModulePath, Version: "v0.3.1"},
			},
		}, true
	}

	if got := Get(); got != "v0.3.1" {
		t.Errorf("expected v0.3.1, got %q", got)
	}
}

func TestGet_BuildInfoReplace(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	readOnce = sync.Once{}
	readBuild = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			Deps: []*debug.Module{
				{Path: ModulePath, Version: "v0.3.1", Replace: &debug.Module{Path: "../gdax", Version: "v0.4.0"}},
			},
		}, true
	}

	if got := Get(); got != "v0.4.0" {
		t.Errorf("expected v0.4.0, got %q", got)
	}
}

func TestGet_Dev(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	readOnce = sync.Once{}
	readBuild = func() (*debug.BuildInfo, bool) { return nil, false }

	if got := UserAgent(); got != "gdax-go/dev" {
		t.Errorf("expected gdax-go/dev, got %q", got)
	}
}

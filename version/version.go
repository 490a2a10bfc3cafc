package version

import (
	"runtime/debug"
	"sync"
)

const (
	// ModulePath is the import path whose build-info version is used as a fallback.
	ModulePath = "github.com/kbukum/gdax"
	// Product is the product token of the User-Agent header.
	Product = "gdax-go"
)

// Version is set at build time using -ldflags.
var Version = "dev"

var (
	buildVersion string
	readOnce     sync.Once
	readBuild    = debug.ReadBuildInfo
)

// Get returns Version, or the module version from build info when Version is "dev".
func Get() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	readOnce.Do(func() {
		buildVersion = fromBuildInfo()
	})
	if buildVersion != "" {
		return buildVersion
	}
	return "dev"
}

// UserAgent returns the User-Agent value sent with every request, e.g. "gdax-go/1.2.0".
func UserAgent() string {
	return Product + "/" + Get()
}

func fromBuildInfo() string {
	info, ok := readBuild()
	if !ok {
		return ""
	}
	if info.Main.Path == ModulePath && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	for _, dep := range info.Deps {
		if dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace.Version
		}
		return dep.Version
	}
	return ""
}

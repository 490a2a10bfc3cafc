// Package version reports the client's version, stamped into every request's
// User-Agent header.
//
// The version is set at compile time via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/gdax/version.Version=1.2.0"
//
// When it is not set and the module is built as a dependency, the version recorded
// in the binary's build info is used.
package version

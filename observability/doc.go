// Package observability wires OpenTelemetry tracing and metrics for the client.
//
// The rest client always opens spans and records request metrics through the otel
// globals. Nothing is exported until a program installs providers:
//
//	shutdown, err := observability.Setup(ctx, observability.DefaultConfig("gdax-ticker"))
//	defer shutdown(ctx)
//
// With an empty Endpoint, Setup installs nothing and the globals stay no-op.
package observability

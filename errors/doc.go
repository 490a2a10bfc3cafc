// Package errors defines the error taxonomy surfaced by the GDAX client.
//
// Every failure returned by the client is an *Error carrying one of four codes:
//
//   - CONNECTOR_ERROR: the HTTP transport could not be built (bad TLS or client config).
//   - URI_ERROR: the final request URI did not parse.
//   - TRANSPORT_ERROR: the request failed on the network or the exchange answered non-2xx.
//   - DECODE_ERROR: the body was not valid JSON or a field failed a custom decode rule.
//
// The client never recovers locally; callers decide on retries with IsRetryable.
package errors

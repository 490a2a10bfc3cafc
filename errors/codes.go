package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

const (
	// ErrCodeConnector indicates the HTTP transport could not be set up.
	ErrCodeConnector ErrorCode = "CONNECTOR_ERROR"
	// ErrCodeURI indicates the request URI was malformed.
	ErrCodeURI ErrorCode = "URI_ERROR"
	// ErrCodeTransport indicates a network failure or a non-success HTTP status.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"
	// ErrCodeDecode indicates the response body could not be decoded.
	ErrCodeDecode ErrorCode = "DECODE_ERROR"
	// ErrCodeInvalidConfig indicates a configuration value failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

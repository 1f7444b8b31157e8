package provider

import "errors"

// Sentinel errors for model endpoint calls. The supervisor treats both as
// recoverable; distinguishing them matters only for logs and metrics.
var (
	// ErrTimeout indicates the endpoint did not respond within the
	// configured per-call timeout.
	ErrTimeout = errors.New("model endpoint timed out")

	// ErrUnreachable indicates a connection, transport, or authentication
	// failure reaching the endpoint.
	ErrUnreachable = errors.New("model endpoint unreachable")
)

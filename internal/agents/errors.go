package agents

import "errors"

// Sentinel errors for sub-agent classification. All are recoverable from
// the supervisor's perspective: each consumes a retry but never aborts a
// session outright.
var (
	// ErrTimeout indicates the agent's model endpoint did not respond
	// within its configured timeout.
	ErrTimeout = errors.New("agent timed out")

	// ErrUnreachable indicates a connection or authentication failure
	// reaching the agent's model endpoint.
	ErrUnreachable = errors.New("agent unreachable")

	// ErrMalformedOutput indicates the model responded, but the response
	// was rejected by the structured output contract.
	ErrMalformedOutput = errors.New("agent produced malformed output")
)

// Package classify implements the classification domain for Quorum.
// It provides the sensitivity label vocabulary, the structured output
// contract that validates raw model responses into votes, and the
// decision record surfaced to callers when a session terminates.
package classify

import "errors"

// Sentinel errors for classification domain operations.
var (
	// ErrSchema indicates a raw model response that does not satisfy the
	// structured output contract. Rejection is strict: out-of-range values
	// are refused rather than clamped so model errors are never masked.
	ErrSchema = errors.New("response violates output contract")

	// ErrEmptyDocument indicates a document with no text payload.
	ErrEmptyDocument = errors.New("document text is empty")
)

// Package consensus implements the agreement rule between the two
// sub-agent votes. Evaluate is a pure function: given the same outcomes
// and threshold it always produces the same verdict, so the rule is unit
// testable without any model endpoint.
package consensus

import "github.com/triage-labs/quorum/internal/classify"

// VerdictKind is the evaluator's disposition for one dispatch round.
type VerdictKind string

// Verdict kinds.
const (
	// KindAccept means both votes agree above the confidence threshold.
	KindAccept VerdictKind = "accept"

	// KindRetry means this round failed recoverably; the supervisor
	// decides whether budget remains for another dispatch.
	KindRetry VerdictKind = "retry"

	// KindEscalate means the retry budget is exhausted. The evaluator
	// never produces this kind; the supervisor converts the final retry
	// verdict into an escalation when no budget remains.
	KindEscalate VerdictKind = "escalate"
)

// RetryReason explains why a round did not produce consensus.
type RetryReason string

// Retry reasons, recorded in the session reason history.
const (
	ReasonAgentFailure  RetryReason = "agent_failure"
	ReasonDisagreement  RetryReason = "disagreement"
	ReasonLowConfidence RetryReason = "low_confidence"
)

// Outcome is one sub-agent's result for a dispatch round: a validated
// vote or the error that prevented one. Exactly one field is set.
type Outcome struct {
	Agent string         `json:"agent"`
	Vote  *classify.Vote `json:"vote,omitempty"`
	Err   error          `json:"-"`
}

// Failed reports whether this outcome carries an error instead of a vote.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Verdict is the evaluator's result for one round. Result is populated
// only for KindAccept; Reason only for KindRetry.
type Verdict struct {
	Kind   VerdictKind
	Reason RetryReason
	Result *classify.Vote

	// Score is the mean of the two confidences when both votes are
	// present, reported for observability. The accept gate itself uses
	// the minimum, not the mean.
	Score float64
}

package classify

import (
	"time"

	"github.com/google/uuid"
)

// Outcome names the terminal result of a classification session.
type Outcome string

// Terminal session outcomes.
const (
	// OutcomeAccepted means both sub-agents reached a confident consensus.
	OutcomeAccepted Outcome = "ACCEPTED"

	// OutcomeEscalated means the retry budget was exhausted without
	// consensus and the document requires human review.
	OutcomeEscalated Outcome = "ESCALATED"
)

// Decision is the terminal record of a classification session. An accepted
// decision carries the agreed label, the conservative (minimum) confidence,
// and a rationale merged from both votes. An escalated decision carries no
// label; it reports the last-seen votes and the reason trail instead, so
// consensus failure is never papered over with a silent default.
type Decision struct {
	SessionID    uuid.UUID `json:"session_id"`
	DocumentID   uuid.UUID `json:"document_id"`
	DocumentName string    `json:"document_name"`
	Outcome      Outcome   `json:"outcome"`

	Label               Label    `json:"label,omitempty"`
	Confidence          float64  `json:"confidence,omitempty"`
	Rationale           string   `json:"rationale,omitempty"`
	MatchedRubricPoints []string `json:"matched_rubric_points,omitempty"`

	VoteA *Vote `json:"agent_a_vote,omitempty"`
	VoteB *Vote `json:"agent_b_vote,omitempty"`

	ConsensusReached bool    `json:"consensus_reached"`
	ConsensusScore   float64 `json:"consensus_score"`

	RoundsUsed    int       `json:"rounds_used"`
	ReasonHistory []string  `json:"reason_history,omitempty"`
	CompletedAt   time.Time `json:"completed_at"`
}

// Accepted reports whether the session ended in confident consensus.
func (d *Decision) Accepted() bool {
	return d.Outcome == OutcomeAccepted
}

package supervisor

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/triage-labs/quorum/internal/consensus"
	"github.com/triage-labs/quorum/internal/documents"
)

// Attempt is one completed dispatch round: both sub-agent outcomes and
// the verdict they produced.
type Attempt struct {
	Round    int               `json:"round"`
	OutcomeA consensus.Outcome `json:"agent_a"`
	OutcomeB consensus.Outcome `json:"agent_b"`
	Verdict  consensus.Verdict `json:"verdict"`
	At       time.Time         `json:"at"`
}

// Session is the per-document run context: configuration snapshot, attempt
// counter, and an append-only history of rounds for audit. A session is
// exclusively owned by one invocation of the supervisor loop and is never
// shared across concurrent classifications.
type Session struct {
	ID        uuid.UUID
	Document  documents.Document
	StartedAt time.Time

	maxAttempts int
	attempts    int
	state       State
	history     []Attempt
	reasons     []string
}

func newSession(doc documents.Document, maxRetries int) *Session {
	return &Session{
		ID:          uuid.New(),
		Document:    doc,
		StartedAt:   time.Now(),
		maxAttempts: maxRetries + 1,
		state:       StateCreated,
	}
}

// State returns the session's current state.
func (s *Session) State() State {
	return s.state
}

// Attempts returns the number of dispatch rounds begun so far.
func (s *Session) Attempts() int {
	return s.attempts
}

// History returns a copy of the completed attempt records.
func (s *Session) History() []Attempt {
	return append([]Attempt(nil), s.history...)
}

// Reasons returns a copy of the retry reason trail.
func (s *Session) Reasons() []string {
	return append([]string(nil), s.reasons...)
}

// beginAttempt increments the attempt counter and moves the session into
// Dispatching. It enforces the loop bound: the counter never exceeds
// maxRetries+1, and terminal sessions refuse further attempts.
func (s *Session) beginAttempt() error {
	if s.state.Terminal() {
		return fmt.Errorf("%w: session %s", ErrSessionTerminal, s.ID)
	}
	if s.attempts >= s.maxAttempts {
		return fmt.Errorf("%w: attempt %d exceeds budget of %d", ErrSessionTerminal, s.attempts+1, s.maxAttempts)
	}
	if err := s.transition(StateDispatching); err != nil {
		return err
	}
	s.attempts++
	return nil
}

func (s *Session) record(a Attempt) {
	s.history = append(s.history, a)
	if a.Verdict.Kind != consensus.KindAccept {
		s.reasons = append(s.reasons, string(a.Verdict.Reason))
	}
}

func (s *Session) transition(to State) error {
	if !canTransition(s.state, to) {
		return transitionError(s.state, to)
	}
	s.state = to
	return nil
}

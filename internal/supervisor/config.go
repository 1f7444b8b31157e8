package supervisor

import (
	"fmt"
	"time"
)

// Config carries the consensus policy for a supervisor. It is a read-only
// snapshot: sessions started from the same supervisor always run under the
// same policy.
type Config struct {
	// MinConfidence is the threshold both votes must meet for acceptance.
	MinConfidence float64

	// MaxRetries is the number of re-dispatches allowed after the first
	// round, bounding a session at MaxRetries+1 dispatch cycles.
	MaxRetries int

	// SessionBudget caps a session's wall clock across all rounds.
	// Zero disables the cap.
	SessionBudget time.Duration

	// GuidanceEnabled asks the supervisor model for retry guidance between
	// rounds. When disabled (or when the guidance call fails), a
	// deterministic summary of the prior votes is used instead.
	GuidanceEnabled bool

	// RetryBackoff is the base delay between dispatch rounds, grown by a
	// fibonacci schedule.
	RetryBackoff time.Duration
}

// Validate rejects configurations the loop cannot run under. A validation
// failure is fatal: the session never starts.
func (c *Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max_retries %d is negative", ErrConfig, c.MaxRetries)
	}
	if c.MinConfidence < 0 || c.MinConfidence > 1 {
		return fmt.Errorf("%w: min_confidence %v outside [0,1]", ErrConfig, c.MinConfidence)
	}
	if c.SessionBudget < 0 {
		return fmt.Errorf("%w: session_budget %v is negative", ErrConfig, c.SessionBudget)
	}
	return nil
}

func (c *Config) backoffBase() time.Duration {
	if c.RetryBackoff <= 0 {
		return time.Second
	}
	return c.RetryBackoff
}

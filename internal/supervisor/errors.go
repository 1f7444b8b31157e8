package supervisor

import "errors"

// Sentinel errors for supervisor operations.
var (
	// ErrConfig indicates an invalid retry budget or confidence threshold.
	// Sessions with invalid configuration never start.
	ErrConfig = errors.New("invalid supervisor configuration")

	// ErrSessionTerminal indicates a programming-contract violation:
	// an attempt was made to drive a session that already reached a
	// terminal state.
	ErrSessionTerminal = errors.New("session already terminal")

	// ErrInvalidTransition indicates a programming-contract violation in
	// the session state machine.
	ErrInvalidTransition = errors.New("invalid session state transition")
)

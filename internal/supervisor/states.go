package supervisor

import "fmt"

// State is a phase of the session state machine:
// Dispatching → Evaluating → {Accepted, Retrying, Escalated}, with
// Retrying looping back to Dispatching. Accepted and Escalated are
// terminal.
type State string

// Session states.
const (
	StateCreated     State = "created"
	StateDispatching State = "dispatching"
	StateEvaluating  State = "evaluating"
	StateRetrying    State = "retrying"
	StateAccepted    State = "accepted"
	StateEscalated   State = "escalated"
)

// Terminal reports whether no further transitions are allowed from s.
func (s State) Terminal() bool {
	return s == StateAccepted || s == StateEscalated
}

var transitions = map[State][]State{
	StateCreated:     {StateDispatching},
	StateDispatching: {StateEvaluating},
	StateEvaluating:  {StateAccepted, StateRetrying, StateEscalated},
	StateRetrying:    {StateDispatching},
}

// canTransition reports whether from → to is a legal edge.
func canTransition(from, to State) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func transitionError(from, to State) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

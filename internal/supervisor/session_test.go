package supervisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triage-labs/quorum/internal/consensus"
	"github.com/triage-labs/quorum/internal/documents"
)

func sessionDoc(t *testing.T) documents.Document {
	t.Helper()
	doc, err := documents.New("memo.txt", "All-hands scheduled for Friday.", nil)
	require.NoError(t, err)
	return doc
}

func TestSessionAttemptBound(t *testing.T) {
	sess := newSession(sessionDoc(t), 1)

	require.NoError(t, sess.beginAttempt())
	require.NoError(t, sess.transition(StateEvaluating))
	require.NoError(t, sess.transition(StateRetrying))

	require.NoError(t, sess.beginAttempt())
	require.NoError(t, sess.transition(StateEvaluating))
	require.NoError(t, sess.transition(StateRetrying))

	err := sess.beginAttempt()
	assert.ErrorIs(t, err, ErrSessionTerminal, "third attempt exceeds a budget of two dispatches")
	assert.Equal(t, 2, sess.Attempts())
}

func TestSessionTerminalRefusesAttempts(t *testing.T) {
	sess := newSession(sessionDoc(t), 2)

	require.NoError(t, sess.beginAttempt())
	require.NoError(t, sess.transition(StateEvaluating))
	require.NoError(t, sess.transition(StateAccepted))

	assert.ErrorIs(t, sess.beginAttempt(), ErrSessionTerminal)
	assert.ErrorIs(t, sess.transition(StateDispatching), ErrInvalidTransition)
}

func TestSessionTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
		ok   bool
	}{
		{StateCreated, StateDispatching, true},
		{StateDispatching, StateEvaluating, true},
		{StateEvaluating, StateAccepted, true},
		{StateEvaluating, StateRetrying, true},
		{StateEvaluating, StateEscalated, true},
		{StateRetrying, StateDispatching, true},
		{StateCreated, StateEvaluating, false},
		{StateDispatching, StateAccepted, false},
		{StateRetrying, StateEvaluating, false},
		{StateAccepted, StateDispatching, false},
		{StateEscalated, StateRetrying, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, canTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSessionHistoryIsAppendOnly(t *testing.T) {
	sess := newSession(sessionDoc(t), 2)

	retry := consensus.Verdict{Kind: consensus.KindRetry, Reason: consensus.ReasonDisagreement}
	accept := consensus.Verdict{Kind: consensus.KindAccept}

	sess.record(Attempt{Round: 1, Verdict: retry, At: time.Now()})
	sess.record(Attempt{Round: 2, Verdict: accept, At: time.Now()})

	history := sess.History()
	require.Len(t, history, 2)
	assert.Equal(t, 1, history[0].Round)
	assert.Equal(t, 2, history[1].Round)

	// Mutating a returned copy never touches the session's record.
	history[0].Round = 99
	assert.Equal(t, 1, sess.History()[0].Round)

	assert.Equal(t, []string{"disagreement"}, sess.Reasons(), "accepted rounds add no retry reason")
}

func TestStateTerminal(t *testing.T) {
	assert.True(t, StateAccepted.Terminal())
	assert.True(t, StateEscalated.Terminal())
	assert.False(t, StateCreated.Terminal())
	assert.False(t, StateDispatching.Terminal())
	assert.False(t, StateEvaluating.Terminal())
	assert.False(t, StateRetrying.Terminal())
}

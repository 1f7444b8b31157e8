// Package observability provides Prometheus metrics instrumentation for
// classification sessions and model calls.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_sessions_total",
			Help: "Total classification sessions by terminal outcome",
		},
		[]string{"outcome"}, // outcome: accepted, escalated, error
	)

	sessionRounds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "quorum_session_rounds",
			Help:    "Dispatch rounds used per classification session",
			Buckets: []float64{1, 2, 3, 4, 5, 8},
		},
	)

	sessionDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quorum_session_duration_seconds",
			Help:    "Classification session duration in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60, 120},
		},
		[]string{"outcome"},
	)

	agentVotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quorum_agent_votes_total",
			Help: "Total sub-agent classification attempts",
		},
		[]string{"agent", "status"}, // status: valid, timeout, unreachable, malformed
	)

	modelCallDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "quorum_model_call_duration_seconds",
			Help:    "Model endpoint call duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"agent", "model"},
	)
)

// RecordSession records a terminal session outcome with its round count and duration.
func RecordSession(outcome string, rounds int, duration time.Duration) {
	sessionsTotal.WithLabelValues(outcome).Inc()
	sessionRounds.Observe(float64(rounds))
	sessionDurationSeconds.WithLabelValues(outcome).Observe(duration.Seconds())
}

// RecordAgentVote records one sub-agent classification attempt.
func RecordAgentVote(agent, status string) {
	agentVotesTotal.WithLabelValues(agent, status).Inc()
}

// RecordModelCall records the duration of one model endpoint call.
func RecordModelCall(agent, model string, duration time.Duration) {
	modelCallDurationSeconds.WithLabelValues(agent, model).Observe(duration.Seconds())
}

// Package agents implements the classification sub-agents and the
// supervisor's reconciliation agent. A sub-agent wraps one model endpoint:
// it composes the classification prompt, invokes the endpoint, and pipes
// the raw response through the structured output contract. Sub-agents
// perform no retries; all retry policy lives in the supervisor.
package agents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/internal/observability"
	"github.com/triage-labs/quorum/internal/prompts"
	"github.com/triage-labs/quorum/internal/provider"
)

// SubAgent classifies documents against one independently configured model
// endpoint. Instances hold no mutable state and are safe to invoke
// concurrently.
type SubAgent struct {
	name        string
	model       string
	temperature float64
	client      provider.Client
	logger      *slog.Logger
}

// NewSubAgent creates a sub-agent over the given endpoint client.
func NewSubAgent(name, model string, temperature float64, client provider.Client, logger *slog.Logger) *SubAgent {
	return &SubAgent{
		name:        name,
		model:       model,
		temperature: temperature,
		client:      client,
		logger:      logger.With("agent", name),
	}
}

// Name returns the agent's configured name.
func (a *SubAgent) Name() string {
	return a.name
}

// Classify submits the document for one classification round and validates
// the response into a Vote. Failures map to the agent error taxonomy:
// ErrTimeout, ErrUnreachable, or ErrMalformedOutput, each wrapped with the
// agent's name for session history.
func (a *SubAgent) Classify(ctx context.Context, doc documents.Document, round int, retryContext string) (*classify.Vote, error) {
	req := provider.Request{
		Model: a.model,
		Messages: []provider.Message{
			{Role: "system", Content: prompts.ClassifySystem()},
			{Role: "user", Content: prompts.Classify(doc, round, retryContext)},
		},
		Temperature: a.temperature,
	}

	start := time.Now()
	content, err := a.client.Invoke(ctx, req)
	observability.RecordModelCall(a.name, a.model, time.Since(start))

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		kind := callError(err)
		observability.RecordAgentVote(a.name, statusFor(kind))
		return nil, fmt.Errorf("agent %s: %w: %w", a.name, kind, err)
	}

	vote, err := classify.ParseVote(content)
	if err != nil {
		observability.RecordAgentVote(a.name, "malformed")
		a.logger.WarnContext(ctx, "response rejected by output contract", "round", round, "error", err)
		return nil, fmt.Errorf("agent %s: %w: %w", a.name, ErrMalformedOutput, err)
	}

	observability.RecordAgentVote(a.name, "valid")
	a.logger.InfoContext(
		ctx, "vote received",
		"round", round,
		"label", vote.Label,
		"confidence", vote.Confidence,
	)

	return vote, nil
}

// callError maps a provider failure onto the agent error taxonomy.
// Cancellation never reaches here; it passes through untouched so the
// supervisor can tell a user abort from an endpoint failure.
func callError(err error) error {
	if errors.Is(err, provider.ErrTimeout) {
		return ErrTimeout
	}
	return ErrUnreachable
}

func statusFor(kind error) string {
	switch {
	case errors.Is(kind, ErrTimeout):
		return "timeout"
	default:
		return "unreachable"
	}
}

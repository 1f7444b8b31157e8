package agents

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/internal/observability"
	"github.com/triage-labs/quorum/internal/prompts"
	"github.com/triage-labs/quorum/internal/provider"
	"github.com/triage-labs/quorum/pkg/formatting"
)

type guidanceResponse struct {
	InstructionsForRetry string `json:"instructions_for_retry"`
}

// Reconciler wraps the supervisor's model endpoint to draft neutral retry
// guidance between rounds. Guidance is advisory only: if the call fails or
// produces unusable output the supervisor falls back to a deterministic
// template, so a flaky supervisor endpoint never consumes the session's
// retry budget.
type Reconciler struct {
	name        string
	model       string
	temperature float64
	client      provider.Client
	logger      *slog.Logger
}

// NewReconciler creates a reconciler over the supervisor's endpoint client.
func NewReconciler(name, model string, temperature float64, client provider.Client, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		name:        name,
		model:       model,
		temperature: temperature,
		client:      client,
		logger:      logger.With("agent", name),
	}
}

// Guide asks the supervisor model for retry instructions derived from both
// votes of a failed round.
func (r *Reconciler) Guide(ctx context.Context, doc documents.Document, round int, voteA, voteB *classify.Vote) (string, error) {
	req := provider.Request{
		Model: r.model,
		Messages: []provider.Message{
			{Role: "system", Content: prompts.ReconcileSystem()},
			{Role: "user", Content: prompts.Reconcile(doc, round, voteA, voteB)},
		},
		Temperature: r.temperature,
	}

	start := time.Now()
	content, err := r.client.Invoke(ctx, req)
	observability.RecordModelCall(r.name, r.model, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("reconciler: %w", err)
	}

	parsed, err := formatting.Parse[guidanceResponse](content)
	if err != nil {
		return "", fmt.Errorf("reconciler: %w", err)
	}
	if strings.TrimSpace(parsed.InstructionsForRetry) == "" {
		return "", fmt.Errorf("reconciler: %w: empty guidance", classify.ErrSchema)
	}

	r.logger.InfoContext(ctx, "retry guidance drafted", "round", round)
	return parsed.InstructionsForRetry, nil
}

// Package infrastructure provides core service initialization for
// application startup. It assembles the shared dependencies (logging,
// lifecycle coordination, the supervisor and its agents) that entry
// points require.
package infrastructure

import (
	"log/slog"
	"os"

	"github.com/triage-labs/quorum/internal/agents"
	"github.com/triage-labs/quorum/internal/config"
	"github.com/triage-labs/quorum/internal/provider"
	"github.com/triage-labs/quorum/internal/supervisor"
	"github.com/triage-labs/quorum/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all entry points.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Supervisor *supervisor.Supervisor
}

// New creates an Infrastructure from the application configuration,
// wiring one endpoint client per agent so the two sub-classifiers stay
// fully independent.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	agentA := subAgent("agent_a", &cfg.Agents.AgentA, logger)
	agentB := subAgent("agent_b", &cfg.Agents.AgentB, logger)

	rec := agents.NewReconciler(
		"supervisor",
		cfg.Agents.Supervisor.Model,
		cfg.Agents.Supervisor.Temperature,
		client(&cfg.Agents.Supervisor),
		logger,
	)

	sup, err := supervisor.New(
		supervisor.Config{
			MinConfidence:   cfg.Consensus.MinConfidence,
			MaxRetries:      cfg.Consensus.MaxRetries(),
			SessionBudget:   cfg.Consensus.SessionBudgetDuration(),
			GuidanceEnabled: !cfg.Consensus.DisableGuidance,
			RetryBackoff:    cfg.Consensus.RetryBackoffDuration(),
		},
		agentA,
		agentB,
		rec,
		logger,
	)
	if err != nil {
		return nil, err
	}

	return &Infrastructure{
		Lifecycle:  lifecycle.New(),
		Logger:     logger,
		Supervisor: sup,
	}, nil
}

func subAgent(name string, cfg *config.AgentConfig, logger *slog.Logger) *agents.SubAgent {
	return agents.NewSubAgent(name, cfg.Model, cfg.Temperature, client(cfg), logger)
}

func client(cfg *config.AgentConfig) provider.Client {
	return provider.NewHTTPClient(cfg.BaseURL, cfg.APIKey, cfg.TimeoutDuration())
}

// Package api exposes classification sessions over HTTP. It is a thin
// presentation adapter: it validates submissions, runs a session, and
// returns the terminal decision; it renders nothing and stores nothing.
package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/pkg/middleware"
	"github.com/triage-labs/quorum/pkg/routes"
)

// Runner executes one classification session to a terminal decision.
type Runner interface {
	Run(ctx context.Context, doc documents.Document) (*classify.Decision, error)
}

// NewModule assembles the API handler with route registration and
// middleware. The caller mounts the returned handler under its base path.
func NewModule(runner Runner, logger *slog.Logger) http.Handler {
	h := NewHandler(runner, logger)

	mux := http.NewServeMux()
	routes.Register(mux, h.Routes())

	stack := middleware.New()
	stack.Use(middleware.Logger(logger))

	return stack.Apply(mux)
}

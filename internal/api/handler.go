package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/pkg/handlers"
	"github.com/triage-labs/quorum/pkg/routes"
)

// Handler provides HTTP endpoints for classification sessions.
type Handler struct {
	runner Runner
	logger *slog.Logger
}

// ClassifyRequest is the submission body for a classification session.
type ClassifyRequest struct {
	Name     string            `json:"name"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// NewHandler creates a Handler with the given session runner and logger.
func NewHandler(runner Runner, logger *slog.Logger) *Handler {
	return &Handler{
		runner: runner,
		logger: logger.With("handler", "classifications"),
	}
}

// Routes returns the route group definition for classification endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/classifications",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Classify},
		},
	}
}

// Classify runs one classification session for the submitted document and
// returns the terminal decision. Escalations are ordinary 200 responses;
// the outcome field distinguishes them.
func (h *Handler) Classify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := documents.New(req.Name, req.Text, req.Metadata)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	decision, err := h.runner.Run(r.Context(), doc)
	if err != nil {
		handlers.RespondError(w, h.logger, mapStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, decision)
}

func mapStatus(err error) int {
	switch {
	case errors.Is(err, classify.ErrEmptyDocument):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

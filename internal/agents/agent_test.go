package agents_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/triage-labs/quorum/internal/agents"
	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
	"github.com/triage-labs/quorum/internal/provider"
)

// stubClient returns a canned response or error and captures the request.
type stubClient struct {
	content string
	err     error
	last    provider.Request
}

func (c *stubClient) Invoke(ctx context.Context, req provider.Request) (string, error) {
	c.last = req
	if c.err != nil {
		return "", c.err
	}
	return c.content, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDoc(t *testing.T) documents.Document {
	t.Helper()
	doc, err := documents.New("press-release.txt", "Acme launches its new product line today.", nil)
	if err != nil {
		t.Fatalf("documents.New: %v", err)
	}
	return doc
}

func TestSubAgentClassify(t *testing.T) {
	client := &stubClient{
		content: `{"label":"PUBLIC","confidence":0.97,"rationale":"announcement intended for release"}`,
	}
	agent := agents.NewSubAgent("agent_a", "gpt-4.1-mini", 0.2, client, testLogger())

	vote, err := agent.Classify(context.Background(), testDoc(t), 1, "")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if vote.Label != classify.LabelPublic {
		t.Errorf("Label = %v, want PUBLIC", vote.Label)
	}
	if vote.Confidence != 0.97 {
		t.Errorf("Confidence = %v, want 0.97", vote.Confidence)
	}
	if client.last.Model != "gpt-4.1-mini" {
		t.Errorf("Model = %q, want gpt-4.1-mini", client.last.Model)
	}
	if len(client.last.Messages) != 2 {
		t.Fatalf("Messages = %d, want system + user", len(client.last.Messages))
	}
	if !strings.Contains(client.last.Messages[1].Content, "Acme launches") {
		t.Error("user prompt missing document text")
	}
}

func TestSubAgentClassifyRetryContext(t *testing.T) {
	client := &stubClient{
		content: `{"label":"PUBLIC","confidence":0.97,"rationale":"r"}`,
	}
	agent := agents.NewSubAgent("agent_b", "gpt-4o-mini", 0.2, client, testLogger())

	guidance := "Focus on whether the document names individuals."
	if _, err := agent.Classify(context.Background(), testDoc(t), 2, guidance); err != nil {
		t.Fatalf("Classify: %v", err)
	}

	if !strings.Contains(client.last.Messages[1].Content, guidance) {
		t.Error("retry context not included in the user prompt")
	}
}

func TestSubAgentClassifyErrors(t *testing.T) {
	tests := []struct {
		name    string
		client  *stubClient
		wantErr error
	}{
		{
			name:    "endpoint timeout",
			client:  &stubClient{err: provider.ErrTimeout},
			wantErr: agents.ErrTimeout,
		},
		{
			name:    "endpoint unreachable",
			client:  &stubClient{err: provider.ErrUnreachable},
			wantErr: agents.ErrUnreachable,
		},
		{
			name:    "prose instead of json",
			client:  &stubClient{content: "I think this document is probably public."},
			wantErr: agents.ErrMalformedOutput,
		},
		{
			name:    "confidence out of range",
			client:  &stubClient{content: `{"label":"PUBLIC","confidence":1.3,"rationale":"r"}`},
			wantErr: agents.ErrMalformedOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := agents.NewSubAgent("agent_a", "gpt-4.1-mini", 0.2, tt.client, testLogger())

			vote, err := agent.Classify(context.Background(), testDoc(t), 1, "")
			if vote != nil {
				t.Error("expected no vote")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), "agent_a") {
				t.Errorf("error %q does not name the agent", err)
			}
		})
	}
}

func TestSubAgentClassifyCancellation(t *testing.T) {
	client := &stubClient{err: context.Canceled}
	agent := agents.NewSubAgent("agent_a", "gpt-4.1-mini", 0.2, client, testLogger())

	_, err := agent.Classify(context.Background(), testDoc(t), 1, "")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, agents.ErrUnreachable) {
		t.Error("cancellation must not be reported as an endpoint failure")
	}
}

func TestReconcilerGuide(t *testing.T) {
	client := &stubClient{
		content: `{"instructions_for_retry":"Re-check whether the figures are already public."}`,
	}
	rec := agents.NewReconciler("supervisor", "gpt-4.1", 0.1, client, testLogger())

	voteA := &classify.Vote{Label: classify.LabelConfidential, Confidence: 0.9, Rationale: "internal figures"}
	voteB := &classify.Vote{Label: classify.LabelPublic, Confidence: 0.9, Rationale: "published figures"}

	guidance, err := rec.Guide(context.Background(), testDoc(t), 1, voteA, voteB)
	if err != nil {
		t.Fatalf("Guide: %v", err)
	}
	if guidance != "Re-check whether the figures are already public." {
		t.Errorf("guidance = %q", guidance)
	}
	if !strings.Contains(client.last.Messages[1].Content, "internal figures") {
		t.Error("reconcile prompt missing first vote rationale")
	}
}

func TestReconcilerGuideErrors(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
	}{
		{"endpoint failure", &stubClient{err: provider.ErrUnreachable}},
		{"unparseable response", &stubClient{content: "no structured guidance here"}},
		{"blank guidance", &stubClient{content: `{"instructions_for_retry":"   "}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := agents.NewReconciler("supervisor", "gpt-4.1", 0.1, tt.client, testLogger())

			voteA := &classify.Vote{Label: classify.LabelPublic, Confidence: 0.9, Rationale: "r"}
			voteB := &classify.Vote{Label: classify.LabelPublic, Confidence: 0.5, Rationale: "r"}

			if _, err := rec.Guide(context.Background(), testDoc(t), 1, voteA, voteB); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
)

// ClassifySystem returns the system prompt for a sub-agent: rubric-bound
// instructions plus the response spec.
func ClassifySystem() string {
	return classifyInstructions + "\n\n" + classifySpec
}

// ReconcileSystem returns the system prompt for the supervisor's
// reconciliation call.
func ReconcileSystem() string {
	return reconcileInstructions + "\n\n" + reconcileSpec
}

// Classify composes the per-round user prompt for a sub-agent. On retry
// rounds the supervisor's guidance is appended under a labelled section;
// the document itself is always presented unchanged.
func Classify(doc documents.Document, round int, retryContext string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Document name: %s\n", doc.Name)
	fmt.Fprintf(&sb, "Round: %d\n\n", round)
	fmt.Fprintf(&sb, "Document content:\n\"\"\"\n%s\n\"\"\"\n", doc.Text)

	if retryContext != "" {
		fmt.Fprintf(&sb, "\nRetry guidance:\n%s\n", retryContext)
	}

	return sb.String()
}

// Reconcile composes the supervisor's reconciliation prompt from the
// document and both disagreeing votes.
func Reconcile(doc documents.Document, round int, voteA, voteB *classify.Vote) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Document name: %s\n", doc.Name)
	fmt.Fprintf(&sb, "Current round: %d\n\n", round)
	fmt.Fprintf(&sb, "Document content:\n\"\"\"\n%s\n\"\"\"\n", doc.Text)
	fmt.Fprintf(&sb, "\nAgent A vote:\n%s\n", voteJSON(voteA))
	fmt.Fprintf(&sb, "\nAgent B vote:\n%s\n", voteJSON(voteB))

	return sb.String()
}

// FallbackGuidance is the deterministic retry augmentation used when
// supervisor guidance is disabled or its call fails: it summarizes the
// prior round's votes so the agents can reconsider the disagreement.
func FallbackGuidance(outA, outB string) string {
	return fmt.Sprintf(
		"The previous round did not reach consensus. Agent A concluded: %s. "+
			"Agent B concluded: %s. Re-examine the document against the rubric "+
			"and weigh the evidence behind both positions before answering.",
		outA, outB,
	)
}

// VoteSummary renders a vote as a short phrase for fallback guidance.
func VoteSummary(v *classify.Vote) string {
	if v == nil {
		return "no valid vote (agent call failed)"
	}
	return fmt.Sprintf("%s (confidence %.2f): %s", v.Label, v.Confidence, v.Rationale)
}

func voteJSON(v *classify.Vote) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

package consensus

import (
	"fmt"
	"strings"

	"github.com/triage-labs/quorum/internal/classify"
)

// Evaluate applies the agreement rule to the two sub-agent outcomes.
// In order: any failed outcome retries as agent_failure; matching labels
// with both confidences at or above threshold accept with the minimum
// confidence (conservative) and a merged rationale; differing labels retry
// as disagreement regardless of confidence; matching labels below
// threshold retry as low_confidence. Whether a retry is affordable is the
// supervisor's call, not the evaluator's.
func Evaluate(a, b Outcome, threshold float64) Verdict {
	if a.Failed() || b.Failed() {
		return Verdict{Kind: KindRetry, Reason: ReasonAgentFailure}
	}

	score := (a.Vote.Confidence + b.Vote.Confidence) / 2

	if a.Vote.Label != b.Vote.Label {
		return Verdict{Kind: KindRetry, Reason: ReasonDisagreement, Score: score}
	}

	if min(a.Vote.Confidence, b.Vote.Confidence) < threshold {
		return Verdict{Kind: KindRetry, Reason: ReasonLowConfidence, Score: score}
	}

	return Verdict{
		Kind:   KindAccept,
		Result: merge(a, b),
		Score:  score,
	}
}

// merge builds the accepted vote from two agreeing outcomes: the shared
// label, the minimum confidence, both rationales attributed to their
// agents, and the union of matched rubric points.
func merge(a, b Outcome) *classify.Vote {
	rationale := fmt.Sprintf(
		"[%s] %s\n[%s] %s",
		a.Agent, strings.TrimSpace(a.Vote.Rationale),
		b.Agent, strings.TrimSpace(b.Vote.Rationale),
	)

	return &classify.Vote{
		Label:               a.Vote.Label,
		Confidence:          min(a.Vote.Confidence, b.Vote.Confidence),
		Rationale:           rationale,
		MatchedRubricPoints: unionPoints(a.Vote.MatchedRubricPoints, b.Vote.MatchedRubricPoints),
	}
}

func unionPoints(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var points []string
	for _, p := range append(append([]string{}, a...), b...) {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		points = append(points, p)
	}
	return points
}

package classify

import (
	"fmt"
	"strings"

	"github.com/triage-labs/quorum/pkg/formatting"
)

// Vote is a single sub-agent's validated classification of a document.
type Vote struct {
	Label               Label    `json:"label"`
	Confidence          float64  `json:"confidence"`
	Rationale           string   `json:"rationale"`
	MatchedRubricPoints []string `json:"matched_rubric_points,omitempty"`
}

// rawVote mirrors the wire shape of a model response before validation.
// Label is kept as a plain string so normalization failures surface through
// Validate rather than through JSON decoding.
type rawVote struct {
	Label               string   `json:"label"`
	Confidence          *float64 `json:"confidence"`
	Rationale           string   `json:"rationale"`
	MatchedRubricPoints []string `json:"matched_rubric_points"`
}

// ParseVote applies the structured output contract to raw model output:
// extract JSON (direct or fenced), then validate every field. It returns
// a Vote only when the content fully satisfies the contract; anything
// else is rejected with an error wrapping ErrSchema.
func ParseVote(content string) (*Vote, error) {
	raw, err := formatting.Parse[rawVote](content)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	return raw.validate()
}

func (r rawVote) validate() (*Vote, error) {
	label, err := ParseLabel(r.Label)
	if err != nil {
		return nil, err
	}

	if r.Confidence == nil {
		return nil, fmt.Errorf("%w: missing confidence", ErrSchema)
	}
	if *r.Confidence < 0 || *r.Confidence > 1 {
		return nil, fmt.Errorf("%w: confidence %v outside [0,1]", ErrSchema, *r.Confidence)
	}

	if strings.TrimSpace(r.Rationale) == "" {
		return nil, fmt.Errorf("%w: empty rationale", ErrSchema)
	}

	return &Vote{
		Label:               label,
		Confidence:          *r.Confidence,
		Rationale:           r.Rationale,
		MatchedRubricPoints: r.MatchedRubricPoints,
	}, nil
}

// Validate re-applies the contract rules to an existing Vote. Votes
// produced by ParseVote always pass; validation is stable under
// re-application.
func (v *Vote) Validate() error {
	if _, err := ParseLabel(string(v.Label)); err != nil {
		return err
	}
	if v.Confidence < 0 || v.Confidence > 1 {
		return fmt.Errorf("%w: confidence %v outside [0,1]", ErrSchema, v.Confidence)
	}
	if strings.TrimSpace(v.Rationale) == "" {
		return fmt.Errorf("%w: empty rationale", ErrSchema)
	}
	return nil
}

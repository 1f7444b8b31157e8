package classify

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Label is a document sensitivity classification.
type Label string

// Sensitivity labels, ordered from most to least restrictive.
const (
	LabelRestricted   Label = "RESTRICTED"
	LabelConfidential Label = "CONFIDENTIAL"
	LabelPublic       Label = "PUBLIC"
)

var labels = []Label{
	LabelRestricted,
	LabelConfidential,
	LabelPublic,
}

// Labels returns the list of valid sensitivity labels.
func Labels() []Label {
	return labels
}

// ParseLabel normalizes a raw label string and validates it against the
// known sensitivity labels. Matching is case-insensitive and tolerant of
// surrounding whitespace. Returns ErrSchema for unrecognized values.
func ParseLabel(s string) (Label, error) {
	v := Label(strings.ToUpper(strings.TrimSpace(s)))
	for _, l := range labels {
		if v == l {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: unknown label %q", ErrSchema, s)
}

// UnmarshalJSON validates that the decoded string is a known label value.
func (l *Label) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseLabel(raw)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

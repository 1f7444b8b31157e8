package classify_test

import (
	"errors"
	"testing"

	"github.com/triage-labs/quorum/internal/classify"
)

func TestParseLabel(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    classify.Label
		wantErr bool
	}{
		{"exact match", "RESTRICTED", classify.LabelRestricted, false},
		{"lowercase", "public", classify.LabelPublic, false},
		{"mixed case", "Confidential", classify.LabelConfidential, false},
		{"surrounding whitespace", "  PUBLIC  ", classify.LabelPublic, false},
		{"unknown value", "SECRET", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := classify.ParseLabel(tt.input)

			if tt.wantErr {
				if !errors.Is(err, classify.ErrSchema) {
					t.Fatalf("ParseLabel(%q) error = %v, want ErrSchema", tt.input, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseLabel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLabel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

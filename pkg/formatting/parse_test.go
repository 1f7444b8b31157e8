package formatting_test

import (
	"errors"
	"testing"

	"github.com/triage-labs/quorum/pkg/formatting"
)

type payload struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    payload
		wantErr bool
	}{
		{
			name:    "direct json",
			content: `{"label":"PUBLIC","confidence":0.9}`,
			want:    payload{Label: "PUBLIC", Confidence: 0.9},
		},
		{
			name:    "json fence",
			content: "```json\n{\"label\":\"PUBLIC\",\"confidence\":0.9}\n```",
			want:    payload{Label: "PUBLIC", Confidence: 0.9},
		},
		{
			name:    "bare fence",
			content: "```\n{\"label\":\"RESTRICTED\",\"confidence\":0.8}\n```",
			want:    payload{Label: "RESTRICTED", Confidence: 0.8},
		},
		{
			name:    "fence with surrounding prose",
			content: "Here is the result:\n```json\n{\"label\":\"PUBLIC\",\"confidence\":0.7}\n```\nLet me know if you need more.",
			want:    payload{Label: "PUBLIC", Confidence: 0.7},
		},
		{
			name:    "leading whitespace",
			content: "\n\n  {\"label\":\"PUBLIC\",\"confidence\":0.9}",
			want:    payload{Label: "PUBLIC", Confidence: 0.9},
		},
		{
			name:    "plain prose",
			content: "The document is probably public.",
			wantErr: true,
		},
		{
			name:    "fence with invalid json",
			content: "```json\nnot valid\n```",
			wantErr: true,
		},
		{
			name:    "empty",
			content: "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := formatting.Parse[payload](tt.content)

			if tt.wantErr {
				if !errors.Is(err, formatting.ErrParseFailed) {
					t.Fatalf("Parse() error = %v, want ErrParseFailed", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

package documents_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/triage-labs/quorum/internal/classify"
	"github.com/triage-labs/quorum/internal/documents"
)

func TestNew(t *testing.T) {
	doc, err := documents.New("notes.txt", "Meeting notes from Tuesday.", map[string]string{"source": "wiki"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if doc.ID == uuid.Nil {
		t.Error("document id not generated")
	}
	if doc.Name != "notes.txt" {
		t.Errorf("Name = %q", doc.Name)
	}
	if doc.Metadata["source"] != "wiki" {
		t.Errorf("Metadata = %v", doc.Metadata)
	}
}

func TestNewRejectsBlankText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := documents.New("empty.txt", text, nil); !errors.Is(err, classify.ErrEmptyDocument) {
			t.Errorf("New(%q) error = %v, want ErrEmptyDocument", text, err)
		}
	}
}

// Package documents provides the document model for classification sessions.
// Documents are opaque text payloads; parsing and chunking of source formats
// happens upstream of this service.
package documents

import (
	"strings"

	"github.com/google/uuid"

	"github.com/triage-labs/quorum/internal/classify"
)

// Document is an immutable text payload submitted for classification.
// Metadata carries caller-supplied context (source system, upload name)
// that is reported back on the decision but never interpreted here.
type Document struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// New creates a Document with a generated id. Returns ErrEmptyDocument
// when the text payload is blank.
func New(name, text string, metadata map[string]string) (Document, error) {
	if strings.TrimSpace(text) == "" {
		return Document{}, classify.ErrEmptyDocument
	}
	return Document{
		ID:       uuid.New(),
		Name:     name,
		Text:     text,
		Metadata: metadata,
	}, nil
}

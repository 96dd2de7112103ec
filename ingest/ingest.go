package ingest

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Document is a piece of text accepted for annotation, with the
// metadata used to key per-pass log artifacts.
type Document struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDocument trims and validates the input text and wraps it in a
// Document with a fresh ID.
func NewDocument(text string) (Document, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Document{}, errors.New("empty document")
	}
	return Document{
		ID:        uuid.NewString(),
		Text:      trimmed,
		CreatedAt: time.Now().UTC(),
	}, nil
}

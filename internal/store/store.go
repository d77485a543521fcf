// Package store persists spec drafts. Three backends share one contract:
// a local SQLite file, a hosted libSQL database, and PostgreSQL.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/jywlabs/specgen/internal/catalog"
)

// ErrNotFound is returned when no document has the requested id.
var ErrNotFound = errors.New("document not found")

// Content is the payload of a document: questionnaire answers, or generated
// markdown with the prompt and stack that produced it.
type Content struct {
	Answers   catalog.Answers `json:"answers,omitempty"`
	Markdown  string          `json:"markdown,omitempty"`
	Prompt    string          `json:"prompt,omitempty"`
	TechStack catalog.Answers `json:"techStack,omitempty"`
	AppName   string          `json:"appName,omitempty"`
}

// Generated reports whether the content came from AI generation.
func (c Content) Generated() bool {
	return c.Markdown != "" || c.Prompt != ""
}

// Document is one stored draft.
type Document struct {
	ID        string
	Name      string
	Content   Content
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store is a document backend.
type Store interface {
	// Upsert creates the document or replaces its name and content.
	// CreatedAt is set on first write only.
	Upsert(ctx context.Context, id, name string, content Content) error
	// List returns every document, newest first.
	List(ctx context.Context) ([]Document, error)
	// Get returns ErrNotFound for an unknown id.
	Get(ctx context.Context, id string) (*Document, error)
	// Delete returns ErrNotFound for an unknown id.
	Delete(ctx context.Context, id string) error
	Close() error
}

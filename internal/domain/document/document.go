package document

import "github.com/studydesk/backend/internal/id"

// Document is a study source: a named piece of text the user reads,
// gets quizzed on, and asks questions about. Immutable once created.
type Document struct {
	ID      string
	Name    string
	Content string
}

// New creates a Document with a generated ID.
func New(name, content string) *Document {
	return &Document{
		ID:      id.New(),
		Name:    name,
		Content: content,
	}
}

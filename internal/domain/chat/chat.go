package chat

import (
	"time"

	"github.com/studydesk/backend/internal/id"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Citation grounds a bot answer in the source document.
type Citation struct {
	PageNumber int
	Quote      string
}

// Message is one entry in a document's chat transcript.
type Message struct {
	ID         string
	DocumentID string
	Role       Role
	Text       string
	Citation   *Citation
	CreatedAt  time.Time
}

// Answer is what a provider returns for a single question. Each call is
// independent; conversation memory is not a provider concern.
type Answer struct {
	Text     string
	Citation *Citation
}

// NewMessage creates a transcript message with a generated ID.
func NewMessage(documentID string, role Role, text string, citation *Citation) *Message {
	return &Message{
		ID:         id.New(),
		DocumentID: documentID,
		Role:       role,
		Text:       text,
		Citation:   citation,
		CreatedAt:  time.Now().UTC(),
	}
}

package store

import (
	"context"
	"errors"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
)

var (
	ErrNotFound = errors.New("not found")
)

// Store is the persistence boundary. Attempts are append-only: there is no
// update or delete, and listing preserves insertion order.
type Store interface {
	SaveDocument(ctx context.Context, doc *document.Document) error
	GetDocument(ctx context.Context, id string) (*document.Document, error)
	ListDocuments(ctx context.Context) ([]*document.Document, error)

	SaveAttempt(ctx context.Context, attempt *quiz.Attempt) error
	ListAttempts(ctx context.Context) ([]*quiz.Attempt, error)
	ListRecentAttempts(ctx context.Context, n int) ([]*quiz.Attempt, error)

	SaveChatMessage(ctx context.Context, msg *chat.Message) error
	ListChatMessages(ctx context.Context, documentID string) ([]*chat.Message, error)

	Close() error
}

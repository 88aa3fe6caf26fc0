// internal/service/study.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/store"
)

// StudyService owns the document library, the current selection, and the
// quiz session bound to that selection. There is exactly one active quiz
// session at a time; changing the selection resets it.
type StudyService struct {
	store   store.Store
	session *quiz.Session
	logger  *slog.Logger

	mu       sync.RWMutex
	selected *document.Document
}

// NewStudyService creates the service around an existing quiz session.
func NewStudyService(s store.Store, session *quiz.Session, logger *slog.Logger) *StudyService {
	return &StudyService{
		store:   s,
		session: session,
		logger:  logger,
	}
}

// SeedLibrary inserts the default sample documents if the library is empty
// and selects the first document, mirroring the app's initial state.
func (ss *StudyService) SeedLibrary(ctx context.Context) error {
	docs, err := ss.store.ListDocuments(ctx)
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		docs = document.DefaultLibrary()
		for _, doc := range docs {
			if err := ss.store.SaveDocument(ctx, doc); err != nil {
				return fmt.Errorf("failed to seed document %q: %w", doc.Name, err)
			}
		}
		ss.logger.Info("seeded document library", "count", len(docs))
	}

	ss.mu.Lock()
	ss.selected = docs[0]
	ss.mu.Unlock()
	ss.session.SetDocument(docs[0])
	return nil
}

// Library lists all documents in insertion order.
func (ss *StudyService) Library(ctx context.Context) ([]*document.Document, error) {
	return ss.store.ListDocuments(ctx)
}

// Document fetches a single document.
func (ss *StudyService) Document(ctx context.Context, id string) (*document.Document, error) {
	return ss.store.GetDocument(ctx, id)
}

// Upload adds a new document to the library and selects it, which resets
// the quiz session.
func (ss *StudyService) Upload(ctx context.Context, name, content string) (*document.Document, error) {
	doc := document.New(name, content)
	if err := ss.store.SaveDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	ss.mu.Lock()
	ss.selected = doc
	ss.mu.Unlock()
	ss.session.SetDocument(doc)

	ss.logger.Info("document uploaded", "document_id", doc.ID, "name", doc.Name)
	return doc, nil
}

// Select makes a document the active one and resets the quiz session.
// Any in-flight generation result for the previous selection is discarded.
func (ss *StudyService) Select(ctx context.Context, id string) (*document.Document, error) {
	doc, err := ss.store.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}

	ss.mu.Lock()
	ss.selected = doc
	ss.mu.Unlock()
	ss.session.SetDocument(doc)
	return doc, nil
}

// Selected returns the currently selected document, or nil.
func (ss *StudyService) Selected() *document.Document {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.selected
}

// QuizState snapshots the current quiz session.
func (ss *StudyService) QuizState() quiz.State {
	return ss.session.State()
}

// GenerateQuiz starts quiz generation and waits for it to settle, so the
// caller sees either an active quiz or the failure. The session enforces
// valid transitions.
func (ss *StudyService) GenerateQuiz(qt quiz.QuestionType) (quiz.State, error) {
	if err := ss.session.Generate(qt); err != nil {
		return ss.session.State(), err
	}
	ss.session.Wait()
	return ss.session.State(), nil
}

// AnswerQuestion records one answer in the active quiz.
func (ss *StudyService) AnswerQuestion(questionID, response string) error {
	return ss.session.RecordAnswer(questionID, response)
}

// SubmitQuiz scores the active quiz and appends the attempt to history.
func (ss *StudyService) SubmitQuiz(ctx context.Context) (*quiz.Attempt, error) {
	attempt, err := ss.session.Submit()
	if err != nil {
		return nil, err
	}

	if err := ss.store.SaveAttempt(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}

	ss.logger.Info("quiz submitted",
		"attempt_id", attempt.ID,
		"document_id", attempt.DocumentID,
		"score", attempt.Score,
	)
	return attempt, nil
}

// RegenerateQuiz starts a new quiz of the same type after submission and
// waits for it to settle.
func (ss *StudyService) RegenerateQuiz() (quiz.State, error) {
	if err := ss.session.Regenerate(); err != nil {
		return ss.session.State(), err
	}
	ss.session.Wait()
	return ss.session.State(), nil
}

// Attempts lists the full attempt history in insertion order.
func (ss *StudyService) Attempts(ctx context.Context) ([]*quiz.Attempt, error) {
	return ss.store.ListAttempts(ctx)
}

// RecentAttempts lists the at-most-n newest attempts, oldest first.
func (ss *StudyService) RecentAttempts(ctx context.Context, n int) ([]*quiz.Attempt, error) {
	return ss.store.ListRecentAttempts(ctx, n)
}

package quiz

import (
	"context"
	"time"

	"github.com/studydesk/backend/internal/domain/document"
)

// QuestionType is the closed set of supported question categories.
type QuestionType string

const (
	TypeMCQ QuestionType = "multiple-choice"
	TypeSAQ QuestionType = "short-answer"
	TypeLAQ QuestionType = "long-answer"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeMCQ, TypeSAQ, TypeLAQ:
		return true
	}
	return false
}

// Question is a single quiz question. Immutable once produced by a source.
type Question struct {
	ID            string
	Type          QuestionType
	Prompt        string
	Options       []string // only for multiple-choice
	CorrectAnswer string
	Explanation   string
}

// Answer pairs a question with the user's response. One record exists per
// question in the active set, keyed by question ID.
type Answer struct {
	QuestionID string
	Response   string
}

// Attempt is the durable record of one completed quiz. Immutable once built.
type Attempt struct {
	ID           string
	DocumentID   string
	DocumentName string
	Questions    []Question
	Answers      []Answer
	Score        int // percentage, 0-100
	CompletedAt  time.Time
}

// QuestionSource supplies questions for a document and question type.
// Implementations may call an LLM or return fixtures (for tests and the
// offline mode). On success it returns between 0 and count questions.
type QuestionSource interface {
	GenerateQuestions(ctx context.Context, doc *document.Document, qt QuestionType, count int) ([]Question, error)
}

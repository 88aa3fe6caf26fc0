package quiz

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/id"
)

// Status is the lifecycle state of a quiz session.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusGenerating Status = "generating"
	StatusActive     Status = "active"
	StatusSubmitted  Status = "submitted"
)

// QuestionsPerQuiz is how many questions a generation request asks for.
const QuestionsPerQuiz = 5

var (
	// ErrInvalidState is returned when an operation is not valid for the
	// session's current state. Callers treat it as a no-op.
	ErrInvalidState = errors.New("operation not valid in current state")

	// ErrUnknownQuestion is returned when an answer targets a question ID
	// that is not in the active set. This is a caller bug, not user error.
	ErrUnknownQuestion = errors.New("question not in active set")

	// ErrNoQuestions is returned when a quiz would have zero questions.
	ErrNoQuestions = errors.New("quiz has no questions")

	// ErrNoDocument is returned when no document is selected.
	ErrNoDocument = errors.New("no document selected")
)

// retryableMessage is surfaced to the user when generation fails.
const retryableMessage = "Quiz generation failed. Please try again."

// requestTag identifies one outstanding generation request. Results are
// applied only if the tag still matches the session, so a response that
// arrives after the document changed (or a newer request was issued) is
// silently discarded.
type requestTag struct {
	documentID string
	generation uint64
}

// Session owns the lifecycle of one quiz attempt against the currently
// selected document: Idle -> Generating -> Active -> Submitted, with
// Submitted -> Generating on regenerate and Generating -> Idle on failure.
// All other transitions are rejected with ErrInvalidState.
//
// Generation runs on a goroutine; the mutex guards every state read and
// write, and provider results pass through apply which re-checks the
// request tag under the lock.
type Session struct {
	source  QuestionSource
	timeout time.Duration
	logger  *slog.Logger

	mu         sync.Mutex
	doc        *document.Document
	status     Status
	qtype      QuestionType
	questions  []Question
	answers    []Answer
	answerIdx  map[string]int // question ID -> answers index
	score      int
	lastErr    string
	generation uint64

	inflight sync.WaitGroup
}

// NewSession creates an idle session with no document selected.
func NewSession(source QuestionSource, timeout time.Duration, logger *slog.Logger) *Session {
	return &Session{
		source:  source,
		timeout: timeout,
		logger:  logger,
		status:  StatusIdle,
	}
}

// SetDocument switches the session to a new document and discards any
// in-progress quiz state, regardless of the current state. An outstanding
// generation request is invalidated by bumping the request tag.
func (s *Session) SetDocument(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.generation++
	s.reset()
}

// reset returns the session to Idle. Caller must hold the mutex.
func (s *Session) reset() {
	s.status = StatusIdle
	s.questions = nil
	s.answers = nil
	s.answerIdx = nil
	s.score = 0
	s.lastErr = ""
}

// Generate requests a new quiz of the given type for the selected document.
// Valid only from Idle or Submitted. The provider call runs asynchronously;
// use Wait or poll State to observe the outcome.
func (s *Session) Generate(qt QuestionType) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc == nil {
		return ErrNoDocument
	}
	if s.status != StatusIdle && s.status != StatusSubmitted {
		return ErrInvalidState
	}
	if !qt.Valid() {
		return ErrInvalidState
	}

	s.status = StatusGenerating
	s.qtype = qt
	s.questions = nil
	s.answers = nil
	s.answerIdx = nil
	s.score = 0
	s.lastErr = ""
	s.generation++

	tag := requestTag{documentID: s.doc.ID, generation: s.generation}
	doc := s.doc

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		questions, err := s.source.GenerateQuestions(ctx, doc, qt, QuestionsPerQuiz)
		s.apply(tag, questions, err)
	}()

	return nil
}

// apply delivers a generation result. Stale results — the document changed,
// the session was reset, or a newer request superseded this one — are
// discarded without touching state.
func (s *Session) apply(tag requestTag, questions []Question, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusGenerating || s.doc == nil ||
		s.doc.ID != tag.documentID || s.generation != tag.generation {
		s.logger.Info("discarding stale generation result", "document_id", tag.documentID)
		return
	}

	if err == nil && len(questions) == 0 {
		err = ErrNoQuestions
	}
	if err != nil {
		s.logger.Error("quiz generation failed",
			"document_id", tag.documentID,
			"question_type", s.qtype,
			"error", err,
		)
		s.reset()
		s.lastErr = retryableMessage
		return
	}

	s.questions = questions
	s.answers = make([]Answer, len(questions))
	s.answerIdx = make(map[string]int, len(questions))
	for i, q := range questions {
		s.answers[i] = Answer{QuestionID: q.ID}
		s.answerIdx[q.ID] = i
	}
	s.status = StatusActive
}

// Wait blocks until no generation request is in flight. The session settles
// in Active (success) or Idle (failure); a discarded stale result leaves
// whatever state the session moved to in the meantime.
func (s *Session) Wait() {
	s.inflight.Wait()
}

// RecordAnswer updates the answer record for a question in the active set.
// Valid only while Active; an unknown question ID is rejected.
func (s *Session) RecordAnswer(questionID, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return ErrInvalidState
	}
	i, ok := s.answerIdx[questionID]
	if !ok {
		return ErrUnknownQuestion
	}
	s.answers[i].Response = response
	return nil
}

// Submit scores the active quiz and produces an immutable Attempt.
// Unanswered questions are scored as incorrect; submission is never blocked
// on completeness. The session moves to Submitted with the score frozen.
func (s *Session) Submit() (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != StatusActive {
		return nil, ErrInvalidState
	}
	// Generation never yields an empty active set, but guard the division.
	if len(s.questions) == 0 {
		return nil, ErrNoQuestions
	}

	_, score := Grade(s.questions, s.answers)

	attempt := &Attempt{
		ID:           id.New(),
		DocumentID:   s.doc.ID,
		DocumentName: s.doc.Name,
		Questions:    slices.Clone(s.questions),
		Answers:      slices.Clone(s.answers),
		Score:        score,
		CompletedAt:  time.Now().UTC(),
	}

	s.score = score
	s.status = StatusSubmitted
	return attempt, nil
}

// Regenerate starts a new quiz of the same type. Valid only from Submitted.
func (s *Session) Regenerate() error {
	s.mu.Lock()
	if s.status != StatusSubmitted {
		s.mu.Unlock()
		return ErrInvalidState
	}
	qt := s.qtype
	s.mu.Unlock()

	return s.Generate(qt)
}

// State is a point-in-time snapshot of the session, safe to read while the
// session keeps moving.
type State struct {
	Status       Status
	QuestionType QuestionType
	Questions    []Question
	Answers      []Answer
	Score        int // meaningful only when Status is Submitted
	LastError    string
}

// State returns a snapshot of the current session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Status:       s.status,
		QuestionType: s.qtype,
		Questions:    slices.Clone(s.questions),
		Answers:      slices.Clone(s.answers),
		Score:        s.score,
		LastError:    s.lastErr,
	}
}

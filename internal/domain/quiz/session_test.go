package quiz_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
)

// stubSource returns a fixed result, optionally blocking until gate is
// closed so tests can interleave other operations with an in-flight
// generation request.
type stubSource struct {
	questions []quiz.Question
	err       error
	gate      chan struct{}
}

func (s *stubSource) GenerateQuestions(ctx context.Context, doc *document.Document, qt quiz.QuestionType, count int) ([]quiz.Question, error) {
	if s.gate != nil {
		<-s.gate
	}
	return s.questions, s.err
}

func fixtureQuestions(n int) []quiz.Question {
	questions := make([]quiz.Question, n)
	for i := range questions {
		questions[i] = quiz.Question{
			ID:            "q" + string(rune('1'+i)),
			Type:          quiz.TypeMCQ,
			Prompt:        "Question " + string(rune('A'+i)),
			CorrectAnswer: "Answer " + string(rune('A'+i)),
		}
	}
	return questions
}

func newTestSession(src quiz.QuestionSource) *quiz.Session {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return quiz.NewSession(src, 5*time.Second, logger)
}

func testDocument(id string) *document.Document {
	return &document.Document{ID: id, Name: id + ".pdf", Content: "content"}
}

func TestGenerate_ProducesActiveQuiz(t *testing.T) {
	src := &stubSource{questions: fixtureQuestions(5)}
	session := newTestSession(src)
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	session.Wait()

	state := session.State()
	if state.Status != quiz.StatusActive {
		t.Fatalf("expected status %q, got %q", quiz.StatusActive, state.Status)
	}
	if len(state.Questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(state.Questions))
	}
	if len(state.Answers) != len(state.Questions) {
		t.Fatalf("expected one answer record per question, got %d for %d questions",
			len(state.Answers), len(state.Questions))
	}
	for _, a := range state.Answers {
		if a.Response != "" {
			t.Errorf("expected answer for %s to start blank, got %q", a.QuestionID, a.Response)
		}
	}
}

func TestGenerate_NoDocumentSelected(t *testing.T) {
	session := newTestSession(&stubSource{questions: fixtureQuestions(5)})

	if err := session.Generate(quiz.TypeMCQ); !errors.Is(err, quiz.ErrNoDocument) {
		t.Errorf("expected ErrNoDocument, got %v", err)
	}
}

func TestGenerate_RejectedWhileActive(t *testing.T) {
	session := activeSession(t, fixtureQuestions(5))

	if err := session.Generate(quiz.TypeSAQ); !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}

	// The active quiz must be untouched.
	if state := session.State(); state.Status != quiz.StatusActive || state.QuestionType != quiz.TypeMCQ {
		t.Errorf("expected active multiple-choice quiz to survive, got %q/%q", state.Status, state.QuestionType)
	}
}

func TestGenerate_UnknownQuestionType(t *testing.T) {
	session := newTestSession(&stubSource{questions: fixtureQuestions(5)})
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.QuestionType("essay")); !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState for unknown type, got %v", err)
	}
}

func TestGenerate_FailureReturnsToIdle(t *testing.T) {
	src := &stubSource{err: errors.New("provider unavailable")}
	session := newTestSession(src)
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	session.Wait()

	state := session.State()
	if state.Status != quiz.StatusIdle {
		t.Fatalf("expected status %q after failure, got %q", quiz.StatusIdle, state.Status)
	}
	if state.LastError == "" {
		t.Error("expected a retryable error message")
	}
	if len(state.Questions) != 0 {
		t.Errorf("expected no questions after failure, got %d", len(state.Questions))
	}

	// Failure is recoverable: a retry from Idle must be accepted.
	src.err = nil
	src.questions = fixtureQuestions(5)
	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("retry after failure: %v", err)
	}
	session.Wait()
	if state := session.State(); state.Status != quiz.StatusActive || state.LastError != "" {
		t.Errorf("expected active quiz with cleared error, got %q with error %q", state.Status, state.LastError)
	}
}

func TestGenerate_EmptyResultIsFailure(t *testing.T) {
	src := &stubSource{questions: nil}
	session := newTestSession(src)
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	session.Wait()

	state := session.State()
	if state.Status != quiz.StatusIdle {
		t.Errorf("expected a zero-question result to fail generation, got status %q", state.Status)
	}
	if state.LastError == "" {
		t.Error("expected a retryable error message")
	}
}

func TestRecordAnswer_LastWriteWins(t *testing.T) {
	session := activeSession(t, fixtureQuestions(2))

	if err := session.RecordAnswer("q1", "first"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if err := session.RecordAnswer("q1", "second"); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	state := session.State()
	if got := state.Answers[0].Response; got != "second" {
		t.Errorf("expected last write to win, got %q", got)
	}
	if got := state.Answers[1].Response; got != "" {
		t.Errorf("expected untouched answer to stay blank, got %q", got)
	}
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	session := activeSession(t, fixtureQuestions(2))

	if err := session.RecordAnswer("nope", "x"); !errors.Is(err, quiz.ErrUnknownQuestion) {
		t.Errorf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestRecordAnswer_OnlyWhileActive(t *testing.T) {
	session := newTestSession(&stubSource{questions: fixtureQuestions(2)})
	session.SetDocument(testDocument("doc-1"))

	if err := session.RecordAnswer("q1", "x"); !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState while idle, got %v", err)
	}
}

func TestSubmit_ScoresAndFreezes(t *testing.T) {
	session := activeSession(t, fixtureQuestions(5))

	// 3 correct, 1 wrong, 1 left blank.
	mustRecord(t, session, "q1", "Answer A")
	mustRecord(t, session, "q2", "answer b")
	mustRecord(t, session, "q3", " Answer C ")
	mustRecord(t, session, "q4", "wrong")

	attempt, err := session.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if attempt.Score != 60 {
		t.Errorf("expected score 60, got %d", attempt.Score)
	}
	if attempt.ID == "" {
		t.Error("expected attempt to carry an ID")
	}
	if attempt.DocumentID != "doc-1" {
		t.Errorf("expected attempt for doc-1, got %q", attempt.DocumentID)
	}
	if len(attempt.Questions) != 5 || len(attempt.Answers) != 5 {
		t.Errorf("expected full question and answer sets, got %d/%d",
			len(attempt.Questions), len(attempt.Answers))
	}
	if attempt.CompletedAt.IsZero() {
		t.Error("expected CompletedAt to be set")
	}

	state := session.State()
	if state.Status != quiz.StatusSubmitted {
		t.Errorf("expected status %q, got %q", quiz.StatusSubmitted, state.Status)
	}
	if state.Score != 60 {
		t.Errorf("expected frozen score 60, got %d", state.Score)
	}
}

func TestSubmit_OnlyWhileActive(t *testing.T) {
	session := activeSession(t, fixtureQuestions(2))

	if _, err := session.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// A second submit must not produce another attempt.
	if _, err := session.Submit(); !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState on double submit, got %v", err)
	}
}

func TestRegenerate_KeepsQuestionType(t *testing.T) {
	src := &stubSource{questions: fixtureQuestions(3)}
	session := newTestSession(src)
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.TypeSAQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	session.Wait()
	if _, err := session.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if err := session.Regenerate(); err != nil {
		t.Fatalf("Regenerate: %v", err)
	}
	session.Wait()

	state := session.State()
	if state.Status != quiz.StatusActive {
		t.Fatalf("expected status %q, got %q", quiz.StatusActive, state.Status)
	}
	if state.QuestionType != quiz.TypeSAQ {
		t.Errorf("expected regenerated quiz to keep type %q, got %q", quiz.TypeSAQ, state.QuestionType)
	}
	if state.Score != 0 {
		t.Errorf("expected score to reset, got %d", state.Score)
	}
	for _, a := range state.Answers {
		if a.Response != "" {
			t.Errorf("expected fresh blank answers, got %q for %s", a.Response, a.QuestionID)
		}
	}
}

func TestRegenerate_OnlyFromSubmitted(t *testing.T) {
	session := activeSession(t, fixtureQuestions(2))

	if err := session.Regenerate(); !errors.Is(err, quiz.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState while active, got %v", err)
	}
}

func TestSetDocument_ResetsActiveQuiz(t *testing.T) {
	session := activeSession(t, fixtureQuestions(3))
	mustRecord(t, session, "q1", "Answer A")

	session.SetDocument(testDocument("doc-2"))

	state := session.State()
	if state.Status != quiz.StatusIdle {
		t.Errorf("expected status %q after document switch, got %q", quiz.StatusIdle, state.Status)
	}
	if len(state.Questions) != 0 || len(state.Answers) != 0 {
		t.Error("expected quiz state to be discarded on document switch")
	}
}

func TestSetDocument_DiscardsInFlightResult(t *testing.T) {
	src := &stubSource{
		questions: fixtureQuestions(5),
		gate:      make(chan struct{}),
	}
	session := newTestSession(src)
	session.SetDocument(testDocument("doc-1"))

	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	// Switch documents while the request is still in flight, then let the
	// stale result arrive.
	session.SetDocument(testDocument("doc-2"))
	close(src.gate)
	session.Wait()

	state := session.State()
	if state.Status != quiz.StatusIdle {
		t.Errorf("expected stale result to be discarded, got status %q", state.Status)
	}
	if len(state.Questions) != 0 {
		t.Errorf("expected no questions from the stale request, got %d", len(state.Questions))
	}
	if state.LastError != "" {
		t.Errorf("expected no error from a discarded result, got %q", state.LastError)
	}
}

func TestState_SnapshotIsDetached(t *testing.T) {
	session := activeSession(t, fixtureQuestions(2))

	before := session.State()
	mustRecord(t, session, "q1", "Answer A")

	if before.Answers[0].Response != "" {
		t.Error("expected earlier snapshot to be unaffected by later writes")
	}
}

// activeSession generates a quiz from the given fixture questions and waits
// for it to become active.
func activeSession(t *testing.T, questions []quiz.Question) *quiz.Session {
	t.Helper()

	session := newTestSession(&stubSource{questions: questions})
	session.SetDocument(testDocument("doc-1"))
	if err := session.Generate(quiz.TypeMCQ); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	session.Wait()
	if state := session.State(); state.Status != quiz.StatusActive {
		t.Fatalf("expected active session, got %q (error %q)", state.Status, state.LastError)
	}
	return session
}

func mustRecord(t *testing.T, session *quiz.Session, questionID, response string) {
	t.Helper()
	if err := session.RecordAnswer(questionID, response); err != nil {
		t.Fatalf("RecordAnswer(%s): %v", questionID, err)
	}
}

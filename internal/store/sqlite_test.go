package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLite_DocumentRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	doc := &document.Document{ID: "doc-1", Name: "Units.pdf", Content: "chapter text"}
	if err := s.SaveDocument(ctx, doc); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	got, err := s.GetDocument(ctx, "doc-1")
	if err != nil {
		t.Fatalf("GetDocument: %v", err)
	}
	if got.ID != doc.ID || got.Name != doc.Name || got.Content != doc.Content {
		t.Errorf("got %+v, want %+v", got, doc)
	}
}

func TestSQLite_GetDocumentNotFound(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.GetDocument(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_ListDocumentsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		doc := &document.Document{ID: id, Name: id + ".pdf", Content: "x"}
		if err := s.SaveDocument(ctx, doc); err != nil {
			t.Fatalf("SaveDocument(%s): %v", id, err)
		}
	}

	docs, err := s.ListDocuments(ctx)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}
	for i, want := range []string{"b", "a", "c"} {
		if docs[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, docs[i].ID)
		}
	}
}

func testAttempt(id string, score int) *quiz.Attempt {
	return &quiz.Attempt{
		ID:           id,
		DocumentID:   "doc-1",
		DocumentName: "Units.pdf",
		Questions: []quiz.Question{
			{ID: "q1", Type: quiz.TypeMCQ, Prompt: "P1", Options: []string{"a", "b"}, CorrectAnswer: "a", Explanation: "because"},
		},
		Answers:     []quiz.Answer{{QuestionID: "q1", Response: "a"}},
		Score:       score,
		CompletedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSQLite_AttemptRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := testAttempt("att-1", 60)
	if err := s.SaveAttempt(ctx, want); err != nil {
		t.Fatalf("SaveAttempt: %v", err)
	}

	attempts, err := s.ListAttempts(ctx)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Fatalf("expected 1 attempt, got %d", len(attempts))
	}

	got := attempts[0]
	if got.ID != want.ID || got.Score != want.Score || got.DocumentName != want.DocumentName {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if !got.CompletedAt.Equal(want.CompletedAt) {
		t.Errorf("expected CompletedAt %v, got %v", want.CompletedAt, got.CompletedAt)
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectAnswer != "a" {
		t.Errorf("questions did not round-trip: %+v", got.Questions)
	}
	if len(got.Answers) != 1 || got.Answers[0].Response != "a" {
		t.Errorf("answers did not round-trip: %+v", got.Answers)
	}
}

func TestSQLite_ListAttemptsChronological(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"att-1", "att-2", "att-3"} {
		if err := s.SaveAttempt(ctx, testAttempt(id, 10*i)); err != nil {
			t.Fatalf("SaveAttempt(%s): %v", id, err)
		}
	}

	attempts, err := s.ListAttempts(ctx)
	if err != nil {
		t.Fatalf("ListAttempts: %v", err)
	}
	for i, want := range []string{"att-1", "att-2", "att-3"} {
		if attempts[i].ID != want {
			t.Errorf("position %d: expected %s, got %s", i, want, attempts[i].ID)
		}
	}
}

func TestSQLite_ListRecentAttempts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"att-1", "att-2", "att-3", "att-4"} {
		if err := s.SaveAttempt(ctx, testAttempt(id, 50)); err != nil {
			t.Fatalf("SaveAttempt(%s): %v", id, err)
		}
	}

	recent, err := s.ListRecentAttempts(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecentAttempts: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(recent))
	}
	// Newest two, oldest of the pair first.
	if recent[0].ID != "att-3" || recent[1].ID != "att-4" {
		t.Errorf("expected att-3, att-4; got %s, %s", recent[0].ID, recent[1].ID)
	}
}

func TestSQLite_ChatMessageRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	user := &chat.Message{
		ID:         "msg-1",
		DocumentID: "doc-1",
		Role:       chat.RoleUser,
		Text:       "What is displacement?",
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	bot := &chat.Message{
		ID:         "msg-2",
		DocumentID: "doc-1",
		Role:       chat.RoleBot,
		Text:       "Displacement is a vector quantity.",
		Citation:   &chat.Citation{PageNumber: 41, Quote: "Path length is a scalar quantity..."},
		CreatedAt:  time.Date(2025, 3, 1, 12, 0, 5, 0, time.UTC),
	}
	for _, msg := range []*chat.Message{user, bot} {
		if err := s.SaveChatMessage(ctx, msg); err != nil {
			t.Fatalf("SaveChatMessage(%s): %v", msg.ID, err)
		}
	}

	messages, err := s.ListChatMessages(ctx, "doc-1")
	if err != nil {
		t.Fatalf("ListChatMessages: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}

	if messages[0].Role != chat.RoleUser || messages[0].Citation != nil {
		t.Errorf("expected citation-free user message first, got %+v", messages[0])
	}
	if messages[1].Role != chat.RoleBot {
		t.Errorf("expected bot message second, got role %q", messages[1].Role)
	}
	if messages[1].Citation == nil || messages[1].Citation.PageNumber != 41 {
		t.Errorf("citation did not round-trip: %+v", messages[1].Citation)
	}
	if !messages[1].CreatedAt.Equal(bot.CreatedAt) {
		t.Errorf("expected CreatedAt %v, got %v", bot.CreatedAt, messages[1].CreatedAt)
	}
}

func TestSQLite_ChatMessagesScopedToDocument(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg := &chat.Message{ID: "msg-1", DocumentID: "doc-1", Role: chat.RoleUser, Text: "hi", CreatedAt: time.Now().UTC()}
	if err := s.SaveChatMessage(ctx, msg); err != nil {
		t.Fatalf("SaveChatMessage: %v", err)
	}

	messages, err := s.ListChatMessages(ctx, "doc-2")
	if err != nil {
		t.Fatalf("ListChatMessages: %v", err)
	}
	if len(messages) != 0 {
		t.Errorf("expected no messages for doc-2, got %d", len(messages))
	}
}

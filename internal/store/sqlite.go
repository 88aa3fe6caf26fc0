// internal/store/sqlite.go
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	_ "modernc.org/sqlite"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/quiz"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    content TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS attempts (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    document_id TEXT NOT NULL,
    document_name TEXT NOT NULL,
    questions TEXT NOT NULL,
    answers TEXT NOT NULL,
    score INTEGER NOT NULL,
    completed_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS chat_messages (
    seq INTEGER PRIMARY KEY AUTOINCREMENT,
    id TEXT NOT NULL UNIQUE,
    document_id TEXT NOT NULL,
    role TEXT NOT NULL,
    text TEXT NOT NULL,
    citation_page INTEGER,
    citation_quote TEXT,
    created_at TEXT NOT NULL
);
`

// SQLiteStore persists documents, the attempt history, and chat transcripts.
// With the default ":memory:" DSN everything lives for the process lifetime
// only. Questions and answers are stored as JSON columns since they are only
// ever read back whole, never queried into.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// A single connection keeps an in-memory database from vanishing
	// between pooled connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Documents
// ============================================================================

func (s *SQLiteStore) SaveDocument(ctx context.Context, doc *document.Document) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO documents (id, name, content) VALUES (?, ?, ?)",
		doc.ID, doc.Name, doc.Content,
	)
	return err
}

func (s *SQLiteStore) GetDocument(ctx context.Context, id string) (*document.Document, error) {
	var doc document.Document
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, content FROM documents WHERE id = ?", id,
	).Scan(&doc.ID, &doc.Name, &doc.Content)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *SQLiteStore) ListDocuments(ctx context.Context) ([]*document.Document, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, content FROM documents ORDER BY rowid")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*document.Document
	for rows.Next() {
		var doc document.Document
		if err := rows.Scan(&doc.ID, &doc.Name, &doc.Content); err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// ============================================================================
// Attempts
// ============================================================================

func (s *SQLiteStore) SaveAttempt(ctx context.Context, attempt *quiz.Attempt) error {
	questionsJSON, err := json.Marshal(attempt.Questions)
	if err != nil {
		return err
	}
	answersJSON, err := json.Marshal(attempt.Answers)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO attempts (id, document_id, document_name, questions, answers, score, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		attempt.ID, attempt.DocumentID, attempt.DocumentName,
		string(questionsJSON), string(answersJSON),
		attempt.Score, attempt.CompletedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) ListAttempts(ctx context.Context) ([]*quiz.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, document_name, questions, answers, score, completed_at
		 FROM attempts ORDER BY seq`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAttempts(rows)
}

// ListRecentAttempts returns the at-most-n newest attempts in chronological
// (oldest-first) order.
func (s *SQLiteStore) ListRecentAttempts(ctx context.Context, n int) ([]*quiz.Attempt, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, document_name, questions, answers, score, completed_at
		 FROM attempts ORDER BY seq DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attempts, err := scanAttempts(rows)
	if err != nil {
		return nil, err
	}

	// Reverse back to insertion order.
	for i, j := 0, len(attempts)-1; i < j; i, j = i+1, j-1 {
		attempts[i], attempts[j] = attempts[j], attempts[i]
	}
	return attempts, nil
}

func scanAttempts(rows *sql.Rows) ([]*quiz.Attempt, error) {
	var attempts []*quiz.Attempt
	for rows.Next() {
		var a quiz.Attempt
		var questionsJSON, answersJSON, completedAt string
		if err := rows.Scan(&a.ID, &a.DocumentID, &a.DocumentName,
			&questionsJSON, &answersJSON, &a.Score, &completedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(questionsJSON), &a.Questions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(answersJSON), &a.Answers); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, completedAt)
		if err != nil {
			return nil, err
		}
		a.CompletedAt = ts
		attempts = append(attempts, &a)
	}
	return attempts, rows.Err()
}

// ============================================================================
// Chat transcripts
// ============================================================================

func (s *SQLiteStore) SaveChatMessage(ctx context.Context, msg *chat.Message) error {
	var page sql.NullInt64
	var quote sql.NullString
	if msg.Citation != nil {
		page = sql.NullInt64{Int64: int64(msg.Citation.PageNumber), Valid: true}
		quote = sql.NullString{String: msg.Citation.Quote, Valid: true}
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (id, document_id, role, text, citation_page, citation_quote, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		msg.ID, msg.DocumentID, string(msg.Role), msg.Text, page, quote,
		msg.CreatedAt.Format(time.RFC3339Nano),
	)
	return err
}

func (s *SQLiteStore) ListChatMessages(ctx context.Context, documentID string) ([]*chat.Message, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, document_id, role, text, citation_page, citation_quote, created_at
		 FROM chat_messages WHERE document_id = ? ORDER BY seq`,
		documentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*chat.Message
	for rows.Next() {
		var msg chat.Message
		var role string
		var page sql.NullInt64
		var quote sql.NullString
		var createdAt string
		if err := rows.Scan(&msg.ID, &msg.DocumentID, &role, &msg.Text, &page, &quote, &createdAt); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		msg.CreatedAt = ts
		msg.Role = chat.Role(role)
		if page.Valid {
			msg.Citation = &chat.Citation{
				PageNumber: int(page.Int64),
				Quote:      quote.String,
			}
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}

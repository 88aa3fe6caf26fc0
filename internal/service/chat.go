// internal/service/chat.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/provider"
	"github.com/studydesk/backend/internal/store"
)

// ChatService answers document questions and keeps the per-document
// transcript. Each provider call is independent; the transcript exists
// for display only.
type ChatService struct {
	store    store.Store
	answerer provider.ChatAnswerer
	logger   *slog.Logger
}

// NewChatService creates a ChatService.
func NewChatService(s store.Store, answerer provider.ChatAnswerer, logger *slog.Logger) *ChatService {
	return &ChatService{
		store:    s,
		answerer: answerer,
		logger:   logger,
	}
}

// Ask records the user's question, asks the provider, records the answer,
// and returns the bot message. On provider failure nothing but the user
// message is kept and the error is returned for the caller to surface as
// retryable.
func (cs *ChatService) Ask(ctx context.Context, documentID, query string) (*chat.Message, error) {
	doc, err := cs.store.GetDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}

	userMsg := chat.NewMessage(doc.ID, chat.RoleUser, query, nil)
	if err := cs.store.SaveChatMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	answer, err := cs.answerer.Ask(ctx, doc, query)
	if err != nil {
		cs.logger.Error("chat provider failed", "document_id", doc.ID, "error", err)
		return nil, fmt.Errorf("chat provider failed: %w", err)
	}

	botMsg := chat.NewMessage(doc.ID, chat.RoleBot, answer.Text, answer.Citation)
	if err := cs.store.SaveChatMessage(ctx, botMsg); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}
	return botMsg, nil
}

// Transcript lists a document's chat history in order.
func (cs *ChatService) Transcript(ctx context.Context, documentID string) ([]*chat.Message, error) {
	if _, err := cs.store.GetDocument(ctx, documentID); err != nil {
		return nil, err
	}
	return cs.store.ListChatMessages(ctx, documentID)
}

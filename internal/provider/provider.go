package provider

import (
	"context"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/domain/document"
	"github.com/studydesk/backend/internal/domain/video"
)

// ChatAnswerer answers a free-form question about a document. Stateless per
// call; the transcript lives with the caller.
type ChatAnswerer interface {
	Ask(ctx context.Context, doc *document.Document, query string) (chat.Answer, error)
}

// VideoRecommender looks up supplementary videos for a document.
type VideoRecommender interface {
	Recommend(ctx context.Context, doc *document.Document) ([]video.Recommendation, error)
}

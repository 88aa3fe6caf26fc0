package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/studydesk/backend/internal/domain/chat"
	"github.com/studydesk/backend/internal/store"
)

// ── Request / Response types ────────────────────────────────────────────────

type AskRequest struct {
	DocumentID string `json:"document_id" example:"ncert-physics-xi-03"`
	Query      string `json:"query" example:"What is the difference between path length and displacement?"`
}

func (r *AskRequest) Validate() error {
	if r.DocumentID == "" {
		return errors.New("document_id is required")
	}
	if r.Query == "" {
		return errors.New("query is required")
	}
	return nil
}

type CitationResponse struct {
	PageNumber int    `json:"page_number"`
	Quote      string `json:"quote"`
}

type ChatMessageResponse struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Text      string            `json:"text"`
	Citation  *CitationResponse `json:"citation,omitempty"`
	CreatedAt string            `json:"created_at"`
}

func chatMessageResponse(msg *chat.Message) ChatMessageResponse {
	resp := ChatMessageResponse{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt.Format(time.RFC3339),
	}
	if msg.Citation != nil {
		resp.Citation = &CitationResponse{
			PageNumber: msg.Citation.PageNumber,
			Quote:      msg.Citation.Quote,
		}
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// askChat answers a question about a document.
// @Summary      Ask the study assistant
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        body  body      AskRequest  true  "Question"
// @Success      200   {object}  ChatMessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /chat [post]
func (h *Handler) askChat(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.chat.Ask(r.Context(), req.DocumentID, req.Query)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, "document not found")
			return
		}
		h.logger.Error("chat failed", "document_id", req.DocumentID, "error", err)
		respondError(w, http.StatusBadGateway, "The assistant is unavailable right now. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, chatMessageResponse(msg))
}

// getTranscript lists a document's chat history.
// @Summary      Get chat transcript
// @Tags         Chat
// @Produce      json
// @Param        documentID  path      string  true  "Document ID"
// @Success      200         {array}   ChatMessageResponse
// @Failure      404         {object}  map[string]string
// @Router       /chat/{documentID} [get]
func (h *Handler) getTranscript(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("documentID")

	messages, err := h.chat.Transcript(r.Context(), documentID)
	if h.handleStoreError(w, err, "document") {
		return
	}

	response := make([]ChatMessageResponse, len(messages))
	for i, msg := range messages {
		response[i] = chatMessageResponse(msg)
	}
	respondJSON(w, http.StatusOK, response)
}

package api

import (
	"errors"
	"net/http"

	"github.com/studydesk/backend/internal/domain/document"
)

// ── Request / Response types ────────────────────────────────────────────────

type UploadDocumentRequest struct {
	Name    string `json:"name" example:"Ch 4: Laws of Motion.pdf"`
	Content string `json:"content" example:"This chapter covers Newton's laws..."`
}

func (r *UploadDocumentRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	if r.Content == "" {
		return errors.New("content is required")
	}
	return nil
}

type DocumentResponse struct {
	ID       string `json:"id" example:"a1b2c3d4e5f6g7h8"`
	Name     string `json:"name" example:"Ch 3: Motion in a Straight Line.pdf"`
	Selected bool   `json:"selected"`
}

type GetDocumentResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (h *Handler) documentResponse(doc *document.Document) DocumentResponse {
	selected := h.study.Selected()
	return DocumentResponse{
		ID:       doc.ID,
		Name:     doc.Name,
		Selected: selected != nil && selected.ID == doc.ID,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listDocuments lists the document library.
// @Summary      List documents
// @Tags         Documents
// @Produce      json
// @Success      200  {array}  DocumentResponse
// @Router       /documents [get]
func (h *Handler) listDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.study.Library(r.Context())
	if h.handleStoreError(w, err, "documents") {
		return
	}

	response := make([]DocumentResponse, len(docs))
	for i, doc := range docs {
		response[i] = h.documentResponse(doc)
	}
	respondJSON(w, http.StatusOK, response)
}

// uploadDocument adds a document to the library and selects it.
// @Summary      Upload a document
// @Description  Add a new study document. It becomes the selected document and the quiz session resets.
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Param        body  body      UploadDocumentRequest  true  "Document to add"
// @Success      201   {object}  DocumentResponse
// @Failure      400   {object}  map[string]string
// @Router       /documents [post]
func (h *Handler) uploadDocument(w http.ResponseWriter, r *http.Request) {
	var req UploadDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := h.study.Upload(r.Context(), req.Name, req.Content)
	if h.handleStoreError(w, err, "document") {
		return
	}

	respondJSON(w, http.StatusCreated, h.documentResponse(doc))
}

// getDocument fetches one document with its content.
// @Summary      Get a document
// @Tags         Documents
// @Produce      json
// @Param        documentID  path      string  true  "Document ID"
// @Success      200         {object}  GetDocumentResponse
// @Failure      404         {object}  map[string]string
// @Router       /documents/{documentID} [get]
func (h *Handler) getDocument(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("documentID")

	doc, err := h.study.Document(r.Context(), documentID)
	if h.handleStoreError(w, err, "document") {
		return
	}

	respondJSON(w, http.StatusOK, GetDocumentResponse{
		ID:      doc.ID,
		Name:    doc.Name,
		Content: doc.Content,
	})
}

// selectDocument makes a document the active one.
// @Summary      Select a document
// @Description  Make a document the active study source. Any in-progress quiz is discarded.
// @Tags         Documents
// @Produce      json
// @Param        documentID  path      string  true  "Document ID"
// @Success      200         {object}  DocumentResponse
// @Failure      404         {object}  map[string]string
// @Router       /documents/{documentID}/select [post]
func (h *Handler) selectDocument(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("documentID")

	doc, err := h.study.Select(r.Context(), documentID)
	if h.handleStoreError(w, err, "document") {
		return
	}

	respondJSON(w, http.StatusOK, h.documentResponse(doc))
}

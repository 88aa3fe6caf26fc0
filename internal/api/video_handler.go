package api

import (
	"net/http"
)

// ── Response types ──────────────────────────────────────────────────────────

type VideoResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	ThumbnailURL string `json:"thumbnail_url"`
	VideoURL     string `json:"video_url"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listVideos fetches supplementary video recommendations for a document.
// @Summary      List video recommendations
// @Tags         Videos
// @Produce      json
// @Param        documentID  path      string  true  "Document ID"
// @Success      200         {array}   VideoResponse
// @Failure      404         {object}  map[string]string
// @Failure      502         {object}  map[string]string
// @Router       /videos/{documentID} [get]
func (h *Handler) listVideos(w http.ResponseWriter, r *http.Request) {
	documentID := r.PathValue("documentID")

	doc, err := h.study.Document(r.Context(), documentID)
	if h.handleStoreError(w, err, "document") {
		return
	}

	recs, err := h.videos.Recommend(r.Context(), doc)
	if err != nil {
		h.logger.Error("video recommendation failed", "document_id", doc.ID, "error", err)
		respondError(w, http.StatusBadGateway, "Video recommendations are unavailable right now. Please try again.")
		return
	}

	response := make([]VideoResponse, len(recs))
	for i, rec := range recs {
		response[i] = VideoResponse{
			ID:           rec.ID,
			Title:        rec.Title,
			Channel:      rec.Channel,
			ThumbnailURL: rec.ThumbnailURL,
			VideoURL:     rec.VideoURL,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

package api

import (
	"net/http"
	"time"

	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/report"
)

// trendSize is how many recent attempts the dashboard chart shows.
const trendSize = 5

// ── Response types ──────────────────────────────────────────────────────────

type AttemptResponse struct {
	ID           string `json:"id"`
	DocumentID   string `json:"document_id"`
	DocumentName string `json:"document_name"`
	Score        int    `json:"score"`
	Questions    int    `json:"questions"`
	CompletedAt  string `json:"completed_at"`
}

type TrendPointResponse struct {
	Label string `json:"label"`
	Score int    `json:"score"`
}

type DashboardResponse struct {
	TotalAttempts int                  `json:"total_attempts"`
	AverageScore  int                  `json:"average_score"`
	Strength      string               `json:"strength,omitempty"`
	Weakness      string               `json:"weakness,omitempty"`
	Trend         []TrendPointResponse `json:"trend"`
}

type NotificationResponse struct {
	Text string `json:"text"`
	Time string `json:"time"`
}

func attemptResponse(a *quiz.Attempt) AttemptResponse {
	return AttemptResponse{
		ID:           a.ID,
		DocumentID:   a.DocumentID,
		DocumentName: a.DocumentName,
		Score:        a.Score,
		Questions:    len(a.Questions),
		CompletedAt:  a.CompletedAt.Format(time.RFC3339),
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listAttempts lists the attempt history in insertion order.
// @Summary      List quiz attempts
// @Tags         Dashboard
// @Produce      json
// @Success      200  {array}  AttemptResponse
// @Router       /attempts [get]
func (h *Handler) listAttempts(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.study.Attempts(r.Context())
	if h.handleStoreError(w, err, "attempts") {
		return
	}

	response := make([]AttemptResponse, len(attempts))
	for i, a := range attempts {
		response[i] = attemptResponse(a)
	}
	respondJSON(w, http.StatusOK, response)
}

// getDashboard computes aggregate statistics over the attempt history.
// @Summary      Get dashboard statistics
// @Description  Average score, strengths/weaknesses by document, and the recent score trend.
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  DashboardResponse
// @Router       /dashboard [get]
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.study.Attempts(r.Context())
	if h.handleStoreError(w, err, "attempts") {
		return
	}

	stats := report.Summarize(attempts)
	trend := report.Trend(attempts, trendSize)

	trendResp := make([]TrendPointResponse, len(trend))
	for i, p := range trend {
		trendResp[i] = TrendPointResponse{Label: p.Label, Score: p.Score}
	}

	respondJSON(w, http.StatusOK, DashboardResponse{
		TotalAttempts: stats.TotalAttempts,
		AverageScore:  stats.AverageScore,
		Strength:      stats.Strength,
		Weakness:      stats.Weakness,
		Trend:         trendResp,
	})
}

// listNotifications derives the activity feed from the attempt history.
// @Summary      List notifications
// @Tags         Dashboard
// @Produce      json
// @Success      200  {array}  NotificationResponse
// @Router       /notifications [get]
func (h *Handler) listNotifications(w http.ResponseWriter, r *http.Request) {
	attempts, err := h.study.Attempts(r.Context())
	if h.handleStoreError(w, err, "attempts") {
		return
	}

	feed := report.Notifications(attempts)
	response := make([]NotificationResponse, len(feed))
	for i, n := range feed {
		response[i] = NotificationResponse{Text: n.Text, Time: n.Time}
	}
	respondJSON(w, http.StatusOK, response)
}

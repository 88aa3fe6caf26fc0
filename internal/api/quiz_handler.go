package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/report"
)

// ── Request / Response types ────────────────────────────────────────────────

type GenerateQuizRequest struct {
	Type string `json:"type" example:"multiple-choice"`
}

func (r *GenerateQuizRequest) Validate() error {
	if !quiz.QuestionType(r.Type).Valid() {
		return errors.New("type must be multiple-choice, short-answer, or long-answer")
	}
	return nil
}

type QuizQuestion struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

type QuizAnswer struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type QuizStateResponse struct {
	Status    string         `json:"status"`
	Type      string         `json:"type,omitempty"`
	Questions []QuizQuestion `json:"questions,omitempty"`
	Answers   []QuizAnswer   `json:"answers,omitempty"`
	Score     *int           `json:"score,omitempty"`
	Error     string         `json:"error,omitempty"`
}

type AnswerQuestionRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

type QuestionResult struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	YourAnswer    string   `json:"your_answer"`
	CorrectAnswer string   `json:"correct_answer"`
	Correct       bool     `json:"correct"`
	Explanation   string   `json:"explanation"`
}

type SubmitQuizResponse struct {
	AttemptID   string           `json:"attempt_id"`
	Score       int              `json:"score"`
	Results     []QuestionResult `json:"results"`
	CompletedAt string           `json:"completed_at"`
}

// quizStateResponse converts a session snapshot. Correct answers and
// explanations are withheld until submission; they come back through the
// submit breakdown.
func quizStateResponse(state quiz.State) QuizStateResponse {
	resp := QuizStateResponse{
		Status: string(state.Status),
		Error:  state.LastError,
	}
	if state.Status == quiz.StatusIdle {
		return resp
	}

	resp.Type = string(state.QuestionType)
	resp.Questions = make([]QuizQuestion, len(state.Questions))
	for i, q := range state.Questions {
		resp.Questions[i] = QuizQuestion{
			ID:      q.ID,
			Type:    string(q.Type),
			Prompt:  q.Prompt,
			Options: q.Options,
		}
	}
	resp.Answers = make([]QuizAnswer, len(state.Answers))
	for i, a := range state.Answers {
		resp.Answers[i] = QuizAnswer{QuestionID: a.QuestionID, Answer: a.Response}
	}
	if state.Status == quiz.StatusSubmitted {
		score := state.Score
		resp.Score = &score
	}
	return resp
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getQuiz returns the current quiz session state.
// @Summary      Get quiz state
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuizStateResponse
// @Router       /quiz [get]
func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, quizStateResponse(h.study.QuizState()))
}

// generateQuiz starts a quiz for the selected document.
// @Summary      Generate a quiz
// @Description  Generate a 5-question quiz of the given type for the selected document. Valid only when no quiz is active.
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      GenerateQuizRequest  true  "Question type"
// @Success      200   {object}  QuizStateResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /quiz/generate [post]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	var req GenerateQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	state, err := h.study.GenerateQuiz(quiz.QuestionType(req.Type))
	if err != nil {
		h.handleQuizError(w, err)
		return
	}

	// Generation settled: Active on success, Idle with a retryable
	// message on provider failure.
	if state.Status == quiz.StatusIdle {
		respondError(w, http.StatusBadGateway, state.LastError)
		return
	}
	respondJSON(w, http.StatusOK, quizStateResponse(state))
}

// answerQuestion records an answer in the active quiz.
// @Summary      Record an answer
// @Tags         Quiz
// @Accept       json
// @Produce      json
// @Param        body  body      AnswerQuestionRequest  true  "Answer"
// @Success      200   {object}  QuizStateResponse
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /quiz/answers [post]
func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	var req AnswerQuestionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.study.AnswerQuestion(req.QuestionID, req.Answer); err != nil {
		h.handleQuizError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, quizStateResponse(h.study.QuizState()))
}

// submitQuiz scores the active quiz.
// @Summary      Submit the quiz
// @Description  Score the active quiz and append the attempt to history. Unanswered questions count as incorrect.
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  SubmitQuizResponse
// @Failure      409  {object}  map[string]string
// @Router       /quiz/submit [post]
func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	attempt, err := h.study.SubmitQuiz(r.Context())
	if err != nil {
		h.handleQuizError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, submitResponse(attempt))
}

// regenerateQuiz starts a new quiz of the same type after submission.
// @Summary      Regenerate the quiz
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuizStateResponse
// @Failure      409  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /quiz/regenerate [post]
func (h *Handler) regenerateQuiz(w http.ResponseWriter, r *http.Request) {
	state, err := h.study.RegenerateQuiz()
	if err != nil {
		h.handleQuizError(w, err)
		return
	}

	if state.Status == quiz.StatusIdle {
		respondError(w, http.StatusBadGateway, state.LastError)
		return
	}
	respondJSON(w, http.StatusOK, quizStateResponse(state))
}

func submitResponse(attempt *quiz.Attempt) SubmitQuizResponse {
	breakdown := report.Breakdown(attempt)
	results := make([]QuestionResult, len(breakdown))
	for i, b := range breakdown {
		results[i] = QuestionResult{
			ID:            b.Question.ID,
			Prompt:        b.Question.Prompt,
			Options:       b.Question.Options,
			YourAnswer:    b.Response,
			CorrectAnswer: b.Question.CorrectAnswer,
			Correct:       b.Correct,
			Explanation:   b.Question.Explanation,
		}
	}

	return SubmitQuizResponse{
		AttemptID:   attempt.ID,
		Score:       attempt.Score,
		Results:     results,
		CompletedAt: attempt.CompletedAt.Format(time.RFC3339),
	}
}

// handleQuizError maps domain errors to HTTP status codes.
func (h *Handler) handleQuizError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrInvalidState):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrNoDocument):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, quiz.ErrUnknownQuestion):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrNoQuestions):
		respondError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Error("quiz error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

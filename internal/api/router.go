// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches all endpoints to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Documents
	mux.HandleFunc("GET /documents", h.listDocuments)
	mux.HandleFunc("POST /documents", h.uploadDocument)
	mux.HandleFunc("GET /documents/{documentID}", h.getDocument)
	mux.HandleFunc("POST /documents/{documentID}/select", h.selectDocument)

	// Quiz
	mux.HandleFunc("GET /quiz", h.getQuiz)
	mux.HandleFunc("POST /quiz/generate", h.generateQuiz)
	mux.HandleFunc("POST /quiz/answers", h.answerQuestion)
	mux.HandleFunc("POST /quiz/submit", h.submitQuiz)
	mux.HandleFunc("POST /quiz/regenerate", h.regenerateQuiz)

	// History & dashboard
	mux.HandleFunc("GET /attempts", h.listAttempts)
	mux.HandleFunc("GET /dashboard", h.getDashboard)
	mux.HandleFunc("GET /notifications", h.listNotifications)

	// Chat
	mux.HandleFunc("POST /chat", h.askChat)
	mux.HandleFunc("GET /chat/{documentID}", h.getTranscript)

	// Videos
	mux.HandleFunc("GET /videos/{documentID}", h.listVideos)
}

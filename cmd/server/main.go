package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studydesk/backend/internal/api"
	"github.com/studydesk/backend/internal/domain/quiz"
	"github.com/studydesk/backend/internal/infrastructure/config"
	"github.com/studydesk/backend/internal/provider"
	"github.com/studydesk/backend/internal/service"
	"github.com/studydesk/backend/internal/store"

	_ "github.com/studydesk/backend/docs" // generated swagger docs
)

// @title           StudyDesk API
// @version         1.0
// @description     Study companion backend — read your documents, take AI-generated quizzes, chat about the material, and track your progress.

// @host      localhost:8080
// @BasePath  /

// mockLatency simulates provider round-trip time in offline mode.
const mockLatency = 1500 * time.Millisecond

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	mock := provider.NewMock(mockLatency)

	var questions quiz.QuestionSource = mock
	var answerer provider.ChatAnswerer = mock
	if cfg.Provider == "openai" {
		ai := provider.NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel)
		questions = ai
		answerer = ai
	}

	session := quiz.NewSession(questions, cfg.GenerationTimeout, logger)
	studySvc := service.NewStudyService(db, session, logger)
	chatSvc := service.NewChatService(db, answerer, logger)
	handler := api.NewHandler(studySvc, chatSvc, mock, logger)

	if err := studySvc.SeedLibrary(context.Background()); err != nil {
		logger.Error("failed to seed library", "error", err)
		os.Exit(1)
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress, "provider", cfg.Provider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

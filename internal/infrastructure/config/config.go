package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration

	// DBPath is the SQLite DSN. The default ":memory:" keeps all state
	// scoped to the current process lifetime.
	DBPath string

	// Provider selects the backing for quiz generation and chat:
	// "mock" (fixture-backed) or "openai".
	Provider    string
	OpenAIKey   string
	OpenAIModel string

	// GenerationTimeout bounds a single outstanding quiz-generation request.
	GenerationTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:     mustGetenv("SERVER_ADDRESS"),
		ShutdownTimeout:   mustGetDuration("SHUTDOWN_TIMEOUT"),
		DBPath:            getenvDefault("DB_PATH", ":memory:"),
		Provider:          getenvDefault("PROVIDER", "mock"),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		GenerationTimeout: getDurationDefault("GENERATION_TIMEOUT", 45*time.Second),
	}

	if cfg.Provider == "openai" && cfg.OpenAIKey == "" {
		log.Fatalf("config: OPENAI_API_KEY is required when PROVIDER=openai")
	}

	return cfg
}

func mustGetenv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	return v
}

func mustGetDuration(k string) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("config: required environment variable %s is not set", k)
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

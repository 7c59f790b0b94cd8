package main

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/kuralverse/thirukural-api/internal/config"
	"github.com/kuralverse/thirukural-api/internal/explainer"
	"github.com/kuralverse/thirukural-api/internal/kural"
	"github.com/kuralverse/thirukural-api/internal/llm"
	"github.com/kuralverse/thirukural-api/internal/server"
)

func main() {
	// A .env file is optional; the environment wins either way.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded environment from .env file")
	}

	cfg := config.Load()

	store, err := kural.Load()
	if err != nil {
		log.Fatalf("failed to load thirukural dataset: %v", err)
	}
	slog.Info("dataset loaded", "records", store.Len())

	generator, err := llm.NewOpenAI(&cfg.OpenAI)
	if err != nil {
		log.Fatalf("failed to create text generator: %v", err)
	}

	svc := explainer.New(&cfg.OpenAI, cfg.Explain.Audience, generator)

	srv := server.New(cfg, svc, store)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

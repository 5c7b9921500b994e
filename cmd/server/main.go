// ABOUTME: Main entry point for the assistant HTTP server
// ABOUTME: Wires config, generator backend, retrieval pipeline, and resume engine
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/avikd/folio-assistant/internal/api"
	"github.com/avikd/folio-assistant/internal/config"
	"github.com/avikd/folio-assistant/internal/hf"
	"github.com/avikd/folio-assistant/internal/llm"
	"github.com/avikd/folio-assistant/internal/models"
	"github.com/avikd/folio-assistant/internal/resume"
	"github.com/avikd/folio-assistant/internal/retrieval"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	site := buildSitePipeline(cfg)
	engine := resume.NewEngine(loadResumeProfile(cfg.ResumePath))

	server := api.NewServer(cfg.Addr, site, engine)

	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutdown signal received, gracefully shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			log.Printf("Warning: error during shutdown: %v", err)
		}
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// buildSitePipeline assembles the knowledge pipeline for the configured
// generator backend. A missing credential does not prevent startup; the
// pipeline reports it per request instead.
func buildSitePipeline(cfg *config.Config) api.SiteAnswerer {
	loader := &retrieval.FileCorpus{Path: cfg.KnowledgePath}
	opts := retrieval.Options{
		MaxChunkLen:   cfg.MaxChunkLen,
		TopK:          cfg.TopK,
		MinScore:      cfg.MinScore,
		UseMinScore:   cfg.UseMinScore,
		DocumentOrder: cfg.DocumentOrder,
	}

	if cfg.Generator == "hf" {
		client, err := hf.NewClient(hf.ClientConfig{
			Token:      cfg.HFToken,
			QAModel:    cfg.QAModel,
			SimModel:   cfg.SimModel,
			MaxRetries: cfg.MaxRetries,
			RetryDelay: cfg.RetryDelay,
			Timeout:    cfg.Timeout,
		})
		if err != nil {
			log.Printf("Warning: HF_API_TOKEN not set - knowledge answers will not work")
			return retrieval.Unconfigured{Err: err}
		}
		return retrieval.NewWithScorer(loader, client, client, opts)
	}

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		FallbackModels: cfg.FallbackModels,
		EmbeddingModel: llm.EmbeddingModelFromName(cfg.EmbeddingModel),
		MaxTokens:      cfg.MaxTokens,
		Temperature:    cfg.Temperature,
	}, llm.NewModelPreference(""))
	if err != nil {
		log.Printf("Warning: OPENAI_API_KEY not set - knowledge answers will not work")
		return retrieval.Unconfigured{Err: err}
	}
	return retrieval.New(loader, client, client, opts)
}

// loadResumeProfile loads the resume when a path is configured. Any failure
// degrades to the engine's upload prompt rather than blocking startup.
func loadResumeProfile(path string) *models.ResumeProfile {
	if path == "" {
		return nil
	}
	profile, err := resume.Load(path)
	if err != nil {
		log.Printf("Warning: failed to load resume from %s: %v", path, err)
		return nil
	}
	log.Printf("Loaded resume profile from %s", path)
	return profile
}

// ABOUTME: Shared pipeline wiring for CLI commands
// ABOUTME: Consolidates config loading and backend construction used by serve, ask, and mcp
package commands

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/avikd/folio-assistant/internal/api"
	"github.com/avikd/folio-assistant/internal/config"
	"github.com/avikd/folio-assistant/internal/hf"
	"github.com/avikd/folio-assistant/internal/llm"
	"github.com/avikd/folio-assistant/internal/resume"
	"github.com/avikd/folio-assistant/internal/retrieval"
)

// loadConfig loads .env and the environment configuration.
func loadConfig() (*config.Config, error) {
	// Load .env for API keys
	_ = godotenv.Load()
	return config.Load()
}

// buildSitePipeline assembles the knowledge pipeline for the configured
// generator backend. A missing credential degrades to a per-request error
// instead of failing construction, so serve and mcp still start.
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
			if !quiet {
				log.Println("Warning: HF_API_TOKEN not set - knowledge answers will not work")
			}
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
		if !quiet {
			log.Println("Warning: OPENAI_API_KEY not set - knowledge answers will not work")
		}
		return retrieval.Unconfigured{Err: err}
	}
	return retrieval.New(loader, client, client, opts)
}

// buildResumeEngine creates the resume engine, with a nil profile when no
// resume is configured or it cannot be read.
func buildResumeEngine(cfg *config.Config) *resume.Engine {
	if cfg.ResumePath == "" {
		return resume.NewEngine(nil)
	}
	profile, err := resume.Load(cfg.ResumePath)
	if err != nil {
		if !quiet {
			log.Printf("Warning: failed to load resume from %s: %v", cfg.ResumePath, err)
		}
		return resume.NewEngine(nil)
	}
	if verbose {
		log.Printf("Loaded resume profile from %s", cfg.ResumePath)
	}
	return resume.NewEngine(profile)
}

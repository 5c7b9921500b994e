// ABOUTME: Centralized configuration for the site assistant
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the assistant.
type Config struct {
	// HTTP server
	Addr string

	// Knowledge-file pipeline
	KnowledgePath string
	MaxChunkLen   int
	TopK          int
	MinScore      float64
	UseMinScore   bool
	DocumentOrder bool

	// Resume pipeline
	ResumePath string

	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	FallbackModels []string
	EmbeddingModel string
	MaxTokens      int
	Temperature    float32

	// Hugging Face settings (extractive QA backend)
	HFToken   string
	QAModel   string
	SimModel  string
	Generator string // "openai" or "hf"

	// Shared HTTP/retry settings
	Timeout    time.Duration
	MaxRetries int
	RetryDelay time.Duration
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getEnv("ASSIST_ADDR", ":8080"),
		KnowledgePath:  getEnv("KNOWLEDGE_PATH", "data/knowledge.md"),
		MaxChunkLen:    getEnvInt("MAX_CHUNK_LEN", 1200),
		TopK:           getEnvInt("RETRIEVAL_TOP_K", 5),
		MinScore:       getEnvFloat("RETRIEVAL_MIN_SCORE", 0.25),
		UseMinScore:    getEnvBool("RETRIEVAL_USE_MIN_SCORE", false),
		DocumentOrder:  getEnvBool("RETRIEVAL_DOCUMENT_ORDER", false),
		ResumePath:     os.Getenv("RESUME_PATH"),
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("ASSIST_OPENAI_MODEL", "gpt-4o-mini"),
		FallbackModels: splitCSV(getEnv("ASSIST_FALLBACK_MODELS", "gpt-4o-mini,gpt-4.1-mini,gpt-3.5-turbo")),
		EmbeddingModel: getEnv("ASSIST_EMBEDDING_MODEL", "text-embedding-3-small"),
		MaxTokens:      getEnvInt("ASSIST_MAX_TOKENS", 1000),
		Temperature:    float32(getEnvFloat("ASSIST_TEMPERATURE", 0.2)),
		HFToken:        os.Getenv("HF_API_TOKEN"),
		QAModel:        getEnv("HF_QA_MODEL", "deepset/roberta-base-squad2"),
		SimModel:       getEnv("HF_SIM_MODEL", "sentence-transformers/all-MiniLM-L6-v2"),
		Generator:      getEnv("ASSIST_GENERATOR", "openai"),
		Timeout:        getEnvDuration("ASSIST_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("ASSIST_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("ASSIST_RETRY_DELAY", 2*time.Second),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("RETRIEVAL_TOP_K must be positive, got %d", c.TopK)
	}
	if c.MinScore < -1 || c.MinScore > 1 {
		return fmt.Errorf("RETRIEVAL_MIN_SCORE must be in [-1,1], got %f", c.MinScore)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("ASSIST_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	if c.Generator != "openai" && c.Generator != "hf" {
		return fmt.Errorf("ASSIST_GENERATOR must be openai or hf, got %q", c.Generator)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	return v == "true" || v == "1"
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

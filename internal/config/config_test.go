// ABOUTME: Tests for environment-based configuration loading
// ABOUTME: Verifies defaults, overrides, CSV parsing and validation bounds
package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with defaults should not fail: %v", err)
	}

	if cfg.Addr != ":8080" {
		t.Errorf("default addr = %q, want :8080", cfg.Addr)
	}
	if cfg.MaxChunkLen != 1200 {
		t.Errorf("default max chunk len = %d, want 1200", cfg.MaxChunkLen)
	}
	if cfg.TopK != 5 {
		t.Errorf("default top-K = %d, want 5", cfg.TopK)
	}
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("default chat model = %q, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", cfg.Timeout)
	}
	if len(cfg.FallbackModels) == 0 {
		t.Error("default fallback model list should not be empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ASSIST_ADDR", ":9999")
	t.Setenv("RETRIEVAL_TOP_K", "3")
	t.Setenv("ASSIST_FALLBACK_MODELS", "m1, m2 ,m3,")
	t.Setenv("ASSIST_TIMEOUT", "5s")
	t.Setenv("RETRIEVAL_USE_MIN_SCORE", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != ":9999" {
		t.Errorf("addr = %q, want :9999", cfg.Addr)
	}
	if cfg.TopK != 3 {
		t.Errorf("top-K = %d, want 3", cfg.TopK)
	}
	if len(cfg.FallbackModels) != 3 || cfg.FallbackModels[1] != "m2" {
		t.Errorf("fallback models = %v, want [m1 m2 m3]", cfg.FallbackModels)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("timeout = %v, want 5s", cfg.Timeout)
	}
	if !cfg.UseMinScore {
		t.Error("UseMinScore should be true")
	}
}

func TestLoad_InvalidValuesFallBackToDefaults(t *testing.T) {
	t.Setenv("RETRIEVAL_TOP_K", "not-a-number")
	t.Setenv("ASSIST_TIMEOUT", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TopK != 5 {
		t.Errorf("unparseable top-K should fall back to 5, got %d", cfg.TopK)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("unparseable timeout should fall back to 30s, got %v", cfg.Timeout)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero top-K", func(c *Config) { c.TopK = 0 }, true},
		{"min score out of range", func(c *Config) { c.MinScore = 1.5 }, true},
		{"too many retries", func(c *Config) { c.MaxRetries = 11 }, true},
		{"unknown generator", func(c *Config) { c.Generator = "llama-at-home" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// ABOUTME: OpenAI client for batch embeddings and grounded chat answers
// ABOUTME: Chat answers walk an ordered model fallback list with sticky preference
package llm

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/avikd/folio-assistant/internal/fault"
	openai "github.com/sashabaranov/go-openai"
)

const (
	// DefaultChatModel is the default model for chat completions
	DefaultChatModel = "gpt-4o-mini"
	// DefaultEmbeddingModel is the default model for embeddings
	DefaultEmbeddingModel = openai.SmallEmbedding3
)

// groundedSystemPrompt keeps answers inside the retrieved context.
const groundedSystemPrompt = `You are a helpful assistant that only answers using the provided context. If the answer is not in the context, say: "I cannot find that in the site knowledge." Keep answers concise.`

// ClientConfig holds configuration for the OpenAI client.
type ClientConfig struct {
	APIKey         string
	BaseURL        string // overridable for tests and compatible gateways
	ChatModel      string
	FallbackModels []string
	EmbeddingModel openai.EmbeddingModel
	MaxTokens      int
	Temperature    float32
}

// DefaultConfig returns the default client configuration.
func DefaultConfig(apiKey string) *ClientConfig {
	return &ClientConfig{
		APIKey:         apiKey,
		ChatModel:      DefaultChatModel,
		EmbeddingModel: DefaultEmbeddingModel,
		MaxTokens:      1000,
		Temperature:    0.2,
	}
}

// EmbeddingModelFromName maps a configured model name onto the client's
// model type, defaulting when the name is empty.
func EmbeddingModelFromName(name string) openai.EmbeddingModel {
	if name == "" {
		return DefaultEmbeddingModel
	}
	return openai.EmbeddingModel(name)
}

// OpenAIClient wraps the OpenAI API for the retrieval pipeline.
type OpenAIClient struct {
	client         *openai.Client
	chatModel      string
	fallbackModels []string
	embeddingModel openai.EmbeddingModel
	maxTokens      int
	temperature    float32
	preference     *ModelPreference
}

// NewOpenAIClient creates a client with default configuration.
func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	return NewOpenAIClientWithConfig(DefaultConfig(apiKey), NewModelPreference(""))
}

// NewOpenAIClientWithConfig creates a client with custom configuration and
// an injected model preference holder.
func NewOpenAIClientWithConfig(config *ClientConfig, pref *ModelPreference) (*OpenAIClient, error) {
	if config.APIKey == "" {
		return nil, fault.ErrMissingAPIKey
	}
	if pref == nil {
		pref = NewModelPreference("")
	}

	cc := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		cc.BaseURL = config.BaseURL
	}

	chatModel := config.ChatModel
	if chatModel == "" {
		chatModel = DefaultChatModel
	}
	embeddingModel := config.EmbeddingModel
	if embeddingModel == "" {
		embeddingModel = DefaultEmbeddingModel
	}

	return &OpenAIClient{
		client:         openai.NewClientWithConfig(cc),
		chatModel:      chatModel,
		fallbackModels: config.FallbackModels,
		embeddingModel: embeddingModel,
		maxTokens:      config.MaxTokens,
		temperature:    config.Temperature,
		preference:     pref,
	}, nil
}

// EmbedTexts embeds all texts in a single batch call. The result is
// order-preserving: result[i] is the vector for texts[i]. No retry here:
// the retrieval pipeline embeds chunks and query together and surfaces
// failures to the caller.
func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: texts,
		Model: c.embeddingModel,
	})
	if err != nil {
		return nil, classifyError("openai embeddings", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, &fault.FormatError{
			Provider: "openai embeddings",
			Detail:   fmt.Sprintf("expected %d vectors, got %d", len(texts), len(resp.Data)),
		}
	}

	vectors := make([][]float64, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(texts) {
			return nil, &fault.FormatError{
				Provider: "openai embeddings",
				Detail:   fmt.Sprintf("vector index %d out of range", d.Index),
			}
		}
		v := make([]float64, len(d.Embedding))
		for i, f := range d.Embedding {
			v[i] = float64(f)
		}
		vectors[d.Index] = v
	}
	return vectors, nil
}

// Answer produces a grounded answer for question from context, trying the
// preferred model first and then each fallback model in order. The first
// success is remembered as the new preference. When every model fails the
// last failure is logged and a degraded answer is returned instead, so the
// caller never sees a raw provider error.
func (c *OpenAIClient) Answer(ctx context.Context, question, contextText string) (string, error) {
	user := fmt.Sprintf("Context:\n%s\n\nQuestion: %s", contextText, question)

	var lastErr error
	for _, model := range c.candidateModels() {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: groundedSystemPrompt},
				{Role: openai.ChatMessageRoleUser, Content: user},
			},
			MaxTokens:   c.maxTokens,
			Temperature: c.temperature,
		})
		if err != nil {
			lastErr = classifyError("openai chat", err)
			log.Printf("model %s failed, trying next: %v", model, lastErr)
			continue
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			lastErr = &fault.FormatError{Provider: "openai chat", Detail: "no completion choices returned"}
			log.Printf("model %s returned empty completion, trying next", model)
			continue
		}

		c.preference.Set(model)
		return resp.Choices[0].Message.Content, nil
	}

	log.Printf("all chat models failed, returning degraded answer: %v", lastErr)
	return FallbackAnswer(question, contextText), nil
}

// candidateModels returns the ordered, de-duplicated model list with the
// sticky preference (when set) at the front.
func (c *OpenAIClient) candidateModels() []string {
	ordered := make([]string, 0, len(c.fallbackModels)+2)
	if p := c.preference.Get(); p != "" {
		ordered = append(ordered, p)
	}
	ordered = append(ordered, c.chatModel)
	ordered = append(ordered, c.fallbackModels...)

	seen := make(map[string]bool, len(ordered))
	out := ordered[:0]
	for _, m := range ordered {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
	}
	return out
}

// classifyError maps go-openai errors onto the fault taxonomy.
func classifyError(provider string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = "unknown error"
		}
		return &fault.ProviderError{Provider: provider, StatusCode: apiErr.HTTPStatusCode, Body: msg}
	}
	return fmt.Errorf("%s: %w", provider, err)
}

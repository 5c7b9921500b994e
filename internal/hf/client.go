// ABOUTME: Hugging Face inference client: extractive QA and sentence-similarity scoring
// ABOUTME: Retries 429/5xx with exponential backoff; other statuses are fatal per call
package hf

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/avikd/folio-assistant/internal/fault"
	"github.com/avikd/folio-assistant/internal/llm"
	"github.com/avikd/folio-assistant/internal/util"
)

const (
	// DefaultBaseURL is the hosted inference API root.
	DefaultBaseURL = "https://api-inference.huggingface.co/models"
	// DefaultQAModel answers extractive question/context queries.
	DefaultQAModel = "deepset/roberta-base-squad2"
	// DefaultSimModel scores sentence similarity for the per-chunk variant.
	DefaultSimModel = "sentence-transformers/all-MiniLM-L6-v2"

	// Spans shorter than minSpanLen with confidence above expandConfidence
	// get expanded to their containing sentence. Known precision tradeoff:
	// short common spans can match the wrong sentence.
	minSpanLen       = 40
	expandConfidence = 0.3
	maxExpandedLen   = 300
)

// ClientConfig holds configuration for the Hugging Face client.
type ClientConfig struct {
	Token      string
	BaseURL    string
	QAModel    string
	SimModel   string
	MaxRetries int
	RetryDelay time.Duration
	Timeout    time.Duration
}

// Client calls the Hugging Face hosted inference API.
type Client struct {
	token      string
	baseURL    string
	qaModel    string
	simModel   string
	maxRetries int
	retryDelay time.Duration
	httpClient *http.Client
}

// NewClient creates a Hugging Face client. The token is required.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.Token == "" {
		return nil, fault.ErrMissingAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.QAModel == "" {
		cfg.QAModel = DefaultQAModel
	}
	if cfg.SimModel == "" {
		cfg.SimModel = DefaultSimModel
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		token:      cfg.Token,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		qaModel:    cfg.QAModel,
		simModel:   cfg.SimModel,
		maxRetries: cfg.MaxRetries,
		retryDelay: cfg.RetryDelay,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type qaRequest struct {
	Inputs struct {
		Question string `json:"question"`
		Context  string `json:"context"`
	} `json:"inputs"`
}

type qaResponse struct {
	Answer string  `json:"answer"`
	Score  float64 `json:"score"`
}

type similarityRequest struct {
	Inputs struct {
		SourceSentence string   `json:"source_sentence"`
		Sentences      []string `json:"sentences"`
	} `json:"inputs"`
}

// Answer runs extractive QA over the context. Failures after retries are
// downgraded to a fallback answer: this backend never propagates a raw
// provider error when a context exists.
func (c *Client) Answer(ctx context.Context, question, contextText string) (string, error) {
	var req qaRequest
	req.Inputs.Question = question
	req.Inputs.Context = contextText

	var resp qaResponse
	if err := c.post(ctx, c.qaModel, req, &resp); err != nil {
		log.Printf("extractive QA failed, returning degraded answer: %v", err)
		return llm.FallbackAnswer(question, contextText), nil
	}

	answer := cleanText(resp.Answer)
	if answer == "" {
		return llm.FallbackAnswer(question, contextText), nil
	}
	if len(answer) < minSpanLen && resp.Score > expandConfidence {
		answer = expandAnswer(answer, contextText)
	}
	return answer, nil
}

// SimilarityScores scores each sentence against the source sentence using
// the provider's sentence-similarity pipeline. Result order matches the
// input order. Used by the per-chunk scoring variant of the retriever.
func (c *Client) SimilarityScores(ctx context.Context, source string, sentences []string) ([]float64, error) {
	if len(sentences) == 0 {
		return nil, nil
	}

	var req similarityRequest
	req.Inputs.SourceSentence = source
	req.Inputs.Sentences = sentences

	var scores []float64
	if err := c.post(ctx, c.simModel, req, &scores); err != nil {
		return nil, err
	}
	if len(scores) != len(sentences) {
		return nil, &fault.FormatError{
			Provider: "huggingface similarity",
			Detail:   fmt.Sprintf("expected %d scores, got %d", len(sentences), len(scores)),
		}
	}
	return scores, nil
}

// post sends one inference request, retrying 429 and 5xx responses with
// exponential backoff. Any other non-2xx status fails the call immediately.
func (c *Client) post(ctx context.Context, model string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(util.CalculateBackoff(c.retryDelay, attempt)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastErr = c.postOnce(ctx, model, body, out)
		if lastErr == nil {
			return nil
		}
		if !fault.IsRetryable(lastErr) {
			return lastErr
		}
	}
	return fmt.Errorf("giving up after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) postOnce(ctx context.Context, model string, body []byte, out any) error {
	url := c.baseURL + "/" + model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("huggingface request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return &fault.ProviderError{
			Provider:   "huggingface",
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &fault.FormatError{Provider: "huggingface", Detail: err.Error()}
	}
	return nil
}

var (
	htmlTags    = regexp.MustCompile(`<[^>]+>`)
	whitespace  = regexp.MustCompile(`\s+`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// cleanText strips HTML tags and collapses whitespace and newlines.
func cleanText(s string) string {
	s = htmlTags.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// expandAnswer grows a short answer span to its containing sentence,
// appending up to one following sentence when it fits. The containing
// sentence is found by naive case-insensitive substring search.
func expandAnswer(span, contextText string) string {
	sentences := splitSentences(contextText)
	lowerSpan := strings.ToLower(span)

	for i, s := range sentences {
		if !strings.Contains(strings.ToLower(s), lowerSpan) {
			continue
		}
		expanded := s
		if i+1 < len(sentences) && len(expanded)+len(sentences[i+1])+2 <= maxExpandedLen {
			expanded += ". " + sentences[i+1]
		}
		return cleanText(expanded) + "."
	}
	return span
}

func splitSentences(s string) []string {
	var out []string
	for _, part := range sentenceEnd.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// ABOUTME: The request pipeline: load corpus, chunk, embed, rank, assemble context, generate
// ABOUTME: Supports batch-embedding (primary) and provider-scored (secondary) retrieval variants
package retrieval

import (
	"context"
	"fmt"
	"strings"

	"github.com/avikd/folio-assistant/internal/chunker"
	"github.com/avikd/folio-assistant/internal/fault"
	"github.com/avikd/folio-assistant/internal/models"
	"github.com/avikd/folio-assistant/internal/rank"
)

// NoKnowledgeMessage is the canned answer for an empty or missing corpus.
// An empty corpus is a content state, not an error.
const NoKnowledgeMessage = "No knowledge added yet. Please add content to the knowledge file and redeploy."

// ContextSeparator joins the selected chunks into the generation context.
const ContextSeparator = "\n\n---\n\n"

// Embedder turns texts into vectors, order-preserving.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float64, error)
}

// Generator produces an answer for a question grounded in context.
type Generator interface {
	Answer(ctx context.Context, question, contextText string) (string, error)
}

// Scorer scores sentences against a source sentence on the provider side.
// When configured it replaces the local embed-and-rank step.
type Scorer interface {
	SimilarityScores(ctx context.Context, source string, sentences []string) ([]float64, error)
}

// CorpusLoader reads the knowledge corpus. Implementations read fresh on
// every call; there is no index to keep warm.
type CorpusLoader interface {
	Load() (string, error)
}

// Options tune the retrieval step.
type Options struct {
	MaxChunkLen int
	TopK        int
	MinScore    float64
	UseMinScore bool
	// DocumentOrder re-sorts the surviving chunks back into corpus order
	// before joining, trading ranking purity for narrative coherence.
	DocumentOrder bool
}

// Unconfigured stands in for the pipeline when no provider credential is
// present. The server still starts; knowledge questions fail per request.
type Unconfigured struct {
	Err error
}

func (u Unconfigured) Answer(context.Context, string) (string, error) {
	return "", u.Err
}

// Orchestrator wires the full question-to-answer pipeline.
type Orchestrator struct {
	loader    CorpusLoader
	embedder  Embedder
	scorer    Scorer
	generator Generator
	opts      Options
}

// New creates an orchestrator using the primary batch-embedding variant.
func New(loader CorpusLoader, embedder Embedder, generator Generator, opts Options) *Orchestrator {
	return &Orchestrator{loader: loader, embedder: embedder, generator: generator, opts: withDefaults(opts)}
}

// NewWithScorer creates an orchestrator using the secondary variant, where
// the provider scores each chunk against the question directly.
func NewWithScorer(loader CorpusLoader, scorer Scorer, generator Generator, opts Options) *Orchestrator {
	return &Orchestrator{loader: loader, scorer: scorer, generator: generator, opts: withDefaults(opts)}
}

func withDefaults(opts Options) Options {
	if opts.MaxChunkLen <= 0 {
		opts.MaxChunkLen = chunker.DefaultMaxChunkLen
	}
	if opts.TopK <= 0 {
		opts.TopK = 5
	}
	return opts
}

// Answer runs the pipeline for one question. An empty corpus yields the
// canned no-knowledge answer, not an error. Provider failures during
// retrieval surface to the caller; generation failures are absorbed by the
// generator's own degraded fallback.
func (o *Orchestrator) Answer(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fault.ErrNoQuestion
	}

	corpus, err := o.loader.Load()
	if err != nil {
		return "", fmt.Errorf("loading knowledge corpus: %w", err)
	}
	if strings.TrimSpace(corpus) == "" {
		return NoKnowledgeMessage, nil
	}

	chunks := chunker.Chunk(corpus, o.opts.MaxChunkLen)

	ranked, err := o.retrieve(ctx, question, chunks)
	if err != nil {
		return "", err
	}

	parts := make([]string, len(ranked))
	for i, s := range ranked {
		parts[i] = s.Chunk.Text
	}
	contextText := strings.Join(parts, ContextSeparator)

	return o.generator.Answer(ctx, question, contextText)
}

func (o *Orchestrator) retrieve(ctx context.Context, question string, chunks []models.Chunk) ([]models.ScoredChunk, error) {
	rankOpts := rank.Options{
		TopK:          o.opts.TopK,
		MinScore:      o.opts.MinScore,
		UseMinScore:   o.opts.UseMinScore,
		DocumentOrder: o.opts.DocumentOrder,
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	if o.scorer != nil {
		scores, err := o.scorer.SimilarityScores(ctx, question, texts)
		if err != nil {
			return nil, fmt.Errorf("scoring chunks: %w", err)
		}
		if len(scores) != len(chunks) {
			return nil, &fault.FormatError{
				Provider: "scorer",
				Detail:   fmt.Sprintf("expected %d scores, got %d", len(chunks), len(scores)),
			}
		}
		scored := make([]models.ScoredChunk, len(chunks))
		for i, c := range chunks {
			scored[i] = models.ScoredChunk{Chunk: c, Score: scores[i]}
		}
		return rank.RankScored(scored, rankOpts), nil
	}

	// One round trip covers chunks and query: the question rides along as
	// the final element of the batch.
	vectors, err := o.embedder.EmbedTexts(ctx, append(texts, question))
	if err != nil {
		return nil, fmt.Errorf("embedding corpus and question: %w", err)
	}
	if len(vectors) != len(chunks)+1 {
		return nil, &fault.FormatError{
			Provider: "embedder",
			Detail:   fmt.Sprintf("expected %d vectors, got %d", len(chunks)+1, len(vectors)),
		}
	}
	queryVec := vectors[len(vectors)-1]

	candidates := make([]rank.Candidate, len(chunks))
	for i, c := range chunks {
		candidates[i] = rank.Candidate{Chunk: c, Vector: vectors[i]}
	}
	return rank.Rank(queryVec, candidates, rankOpts), nil
}

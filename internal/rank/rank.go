// ABOUTME: Cosine similarity scoring and top-K ranking of corpus chunks
// ABOUTME: The zero-norm rule (similarity 0) keeps degenerate vectors out of the error path
package rank

import (
	"math"
	"sort"

	"github.com/avikd/folio-assistant/internal/models"
)

// Candidate pairs a chunk with its embedding vector.
type Candidate struct {
	Chunk  models.Chunk
	Vector []float64
}

// Options control ranking behavior. The primary pipeline takes the top K
// by score alone; the strict variant additionally enforces MinScore and
// restores document order so the assembled context reads coherently.
type Options struct {
	TopK          int
	MinScore      float64 // applied only when UseMinScore is set
	UseMinScore   bool
	DocumentOrder bool // re-sort survivors by SourceOffset after truncation
}

// CosineSimilarity returns dot(a,b) / (||a||*||b||). When either vector
// has zero norm (or lengths differ) the similarity is defined as 0 rather
// than an error, so callers never divide by zero.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// Rank scores every candidate against the query vector and returns the
// best matches per opts. The sort is stable: equal scores keep their
// original corpus order.
func Rank(query []float64, candidates []Candidate, opts Options) []models.ScoredChunk {
	scored := make([]models.ScoredChunk, 0, len(candidates))
	for _, c := range candidates {
		scored = append(scored, models.ScoredChunk{Chunk: c.Chunk, Score: CosineSimilarity(query, c.Vector)})
	}
	return RankScored(scored, opts)
}

// RankScored applies the filter/sort/truncate policy to chunks that were
// already scored, e.g. by a provider-side similarity pipeline.
func RankScored(scored []models.ScoredChunk, opts Options) []models.ScoredChunk {
	if opts.UseMinScore {
		kept := scored[:0]
		for _, s := range scored {
			if s.Score >= opts.MinScore {
				kept = append(kept, s)
			}
		}
		scored = kept
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if opts.TopK > 0 && len(scored) > opts.TopK {
		scored = scored[:opts.TopK]
	}

	if opts.DocumentOrder {
		sort.SliceStable(scored, func(i, j int) bool {
			return scored[i].Chunk.SourceOffset < scored[j].Chunk.SourceOffset
		})
	}

	return scored
}

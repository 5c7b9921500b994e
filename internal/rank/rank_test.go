// ABOUTME: Tests for cosine similarity and ranking behavior
// ABOUTME: Covers symmetry, zero-norm handling, stable ties and the strict variant
package rank

import (
	"math"
	"testing"

	"github.com/avikd/folio-assistant/internal/models"
)

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a, b     []float64
		expected float64
		delta    float64
	}{
		{"identical vectors", []float64{1, 0, 0}, []float64{1, 0, 0}, 1.0, 0.001},
		{"orthogonal vectors", []float64{1, 0, 0}, []float64{0, 1, 0}, 0.0, 0.001},
		{"opposite vectors", []float64{1, 0, 0}, []float64{-1, 0, 0}, -1.0, 0.001},
		{"similar vectors", []float64{1, 0, 0}, []float64{0.9, 0.1, 0}, 0.995, 0.01},
		{"zero vector", []float64{0, 0, 0}, []float64{1, 2, 3}, 0.0, 0.001},
		{"both zero", []float64{0, 0}, []float64{0, 0}, 0.0, 0.001},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0.0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if math.Abs(got-tt.expected) > tt.delta {
				t.Errorf("CosineSimilarity(%v, %v) = %.4f, want %.4f", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestCosineSimilarity_Symmetry(t *testing.T) {
	a := []float64{0.3, -0.2, 0.8, 0.1}
	b := []float64{0.5, 0.5, -0.1, 0.9}
	if CosineSimilarity(a, b) != CosineSimilarity(b, a) {
		t.Error("cosine similarity should be symmetric")
	}
}

func candidates(vecs ...[]float64) []Candidate {
	out := make([]Candidate, len(vecs))
	for i, v := range vecs {
		out[i] = Candidate{
			Chunk:  models.Chunk{ChunkID: string(rune('A' + i)), Text: string(rune('A' + i)), SourceOffset: i},
			Vector: v,
		}
	}
	return out
}

func TestRank_StableTieBreak(t *testing.T) {
	// C1 and C2 both score 0.9 against the query; C3 scores lower.
	query := []float64{1, 0}
	cands := candidates(
		[]float64{0.9, 0},
		[]float64{0.9, 0},
		[]float64{0.5, 0.5},
	)

	got := Rank(query, cands, Options{TopK: 2})

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Chunk.Text != "A" || got[1].Chunk.Text != "B" {
		t.Errorf("tie should keep corpus order [A B], got [%s %s]", got[0].Chunk.Text, got[1].Chunk.Text)
	}
}

func TestRank_DescendingOrder(t *testing.T) {
	query := []float64{1, 0}
	cands := candidates(
		[]float64{0, 1},    // orthogonal
		[]float64{1, 0},    // identical
		[]float64{0.7, 0.7}, // in between
	)

	got := Rank(query, cands, Options{TopK: 3})

	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("scores not descending at %d: %.3f > %.3f", i, got[i].Score, got[i-1].Score)
		}
	}
	if got[0].Chunk.Text != "B" {
		t.Errorf("best match should be B, got %s", got[0].Chunk.Text)
	}
}

func TestRank_MinScoreFloor(t *testing.T) {
	query := []float64{1, 0}
	cands := candidates(
		[]float64{1, 0},
		[]float64{0, 1},
	)

	got := Rank(query, cands, Options{TopK: 5, MinScore: 0.5, UseMinScore: true})

	if len(got) != 1 {
		t.Fatalf("expected 1 survivor above the floor, got %d", len(got))
	}
	if got[0].Chunk.Text != "A" {
		t.Errorf("expected A to survive, got %s", got[0].Chunk.Text)
	}
}

func TestRank_DocumentOrderVariant(t *testing.T) {
	// Best score belongs to the chunk latest in the document; the strict
	// variant re-sorts survivors back into document order.
	query := []float64{1, 0}
	cands := candidates(
		[]float64{0.6, 0.8},
		[]float64{0.8, 0.6},
		[]float64{1, 0},
	)

	got := Rank(query, cands, Options{TopK: 2, DocumentOrder: true})

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Chunk.SourceOffset > got[1].Chunk.SourceOffset {
		t.Errorf("results should be in document order, got offsets %d, %d",
			got[0].Chunk.SourceOffset, got[1].Chunk.SourceOffset)
	}
}

func TestRank_EmptyCandidates(t *testing.T) {
	if got := Rank([]float64{1, 0}, nil, Options{TopK: 5}); len(got) != 0 {
		t.Errorf("expected no results for no candidates, got %d", len(got))
	}
}

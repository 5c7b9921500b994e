// ABOUTME: Chunk and ScoredChunk types shared by the chunker, ranker and retriever
// ABOUTME: Chunks are bounded-size passages cut from the knowledge corpus
package models

// Chunk is a contiguous passage of the knowledge corpus.
// SourceOffset is the paragraph index of the chunk's first paragraph,
// so callers can restore document order after ranking.
type Chunk struct {
	ChunkID      string `json:"chunk_id"`
	Text         string `json:"text"`
	SourceOffset int    `json:"source_offset"`
}

// ScoredChunk pairs a chunk with its similarity score against a query.
// Scores are cosine similarities in [-1, 1].
type ScoredChunk struct {
	Chunk Chunk   `json:"chunk"`
	Score float64 `json:"score"`
}

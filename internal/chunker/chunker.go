// ABOUTME: Splits the knowledge corpus into bounded-size passages on paragraph boundaries
// ABOUTME: Greedy accumulation keeps paragraphs intact even when one alone exceeds the limit
package chunker

import (
	"regexp"
	"strings"

	"github.com/avikd/folio-assistant/internal/models"
	"github.com/google/uuid"
)

// DefaultMaxChunkLen matches the size the site's knowledge file is tuned for.
const DefaultMaxChunkLen = 1200

// paragraphSep joins paragraphs inside a chunk and is the boundary the
// splitter cuts on. Two or more consecutive newlines count as a boundary.
const paragraphSep = "\n\n"

var blankLines = regexp.MustCompile(`\n{2,}`)

// Chunk splits text into passages of at most maxLen characters, cutting
// only on blank-line boundaries. Paragraphs are accumulated greedily; a
// single paragraph longer than maxLen becomes its own oversized chunk
// rather than being split mid-paragraph. Never returns an empty chunk.
func Chunk(text string, maxLen int) []models.Chunk {
	if maxLen <= 0 {
		maxLen = DefaultMaxChunkLen
	}

	var paragraphs []string
	for _, p := range blankLines.Split(text, -1) {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}

	var chunks []models.Chunk
	var buf string
	bufOffset := 0
	flush := func() {
		if buf != "" {
			chunks = append(chunks, models.Chunk{
				ChunkID:      newChunkID(),
				Text:         buf,
				SourceOffset: bufOffset,
			})
		}
	}

	for i, p := range paragraphs {
		switch {
		case buf == "":
			buf = p
			bufOffset = i
		case len(buf)+len(paragraphSep)+len(p) > maxLen:
			flush()
			buf = p
			bufOffset = i
		default:
			buf += paragraphSep + p
		}
	}
	flush()

	return chunks
}

// Join reassembles chunk texts with the paragraph separator, the inverse
// of Chunk modulo boundary trimming.
func Join(chunks []models.Chunk) string {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	return strings.Join(texts, paragraphSep)
}

func newChunkID() string {
	return "chunk_" + uuid.New().String()
}

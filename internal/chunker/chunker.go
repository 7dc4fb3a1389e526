// Package chunker splits resume text into fixed-size chunks for
// embedding and retrieval.
package chunker

import (
	"github.com/google/uuid"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

// DefaultChunkSize is the default number of characters per chunk.
const DefaultChunkSize = 1000

// Chunker splits document text into contiguous, non-overlapping windows
// of exactly chunkSize characters, except possibly the last.
type Chunker struct {
	chunkSize int
}

// Option configures the chunker.
type Option func(*Chunker)

// WithChunkSize sets the chunk size in characters.
func WithChunkSize(size int) Option {
	return func(c *Chunker) {
		if size > 0 {
			c.chunkSize = size
		}
	}
}

// New creates a new chunker with the given options.
func New(opts ...Option) *Chunker {
	c := &Chunker{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Split cuts text into windows of size characters. The output is fully
// determined by the input and size, which is what makes re-ingestion of
// an unchanged document reproducible. Empty text yields no windows.
func Split(text string, size int) []string {
	if text == "" || size <= 0 {
		return nil
	}

	windows := make([]string, 0, len(text)/size+1)
	for start := 0; start < len(text); start += size {
		end := start + size
		if end > len(text) {
			end = len(text)
		}
		windows = append(windows, text[start:end])
	}
	return windows
}

// Chunk splits document text into resume chunks with fresh IDs and
// order-preserving positions.
func (c *Chunker) Chunk(text, sourcePath string) []domain.ResumeChunk {
	windows := Split(text, c.chunkSize)
	if len(windows) == 0 {
		return nil
	}

	chunks := make([]domain.ResumeChunk, len(windows))
	for i, content := range windows {
		chunks[i] = domain.ResumeChunk{
			ID:         uuid.New().String(),
			Content:    content,
			SourcePath: sourcePath,
			Position:   i,
			Metadata:   map[string]any{"source": sourcePath},
		}
	}
	return chunks
}

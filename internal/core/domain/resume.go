package domain

// ResumeChunk is a fixed-size slice of a resume document. Chunks are the
// unit of embedding and retrieval; they are created at ingestion time and
// never mutated afterwards.
type ResumeChunk struct {
	// ID is the unique identifier for the chunk.
	ID string

	// Content is the chunk text.
	Content string

	// SourcePath is the path of the resume file the chunk came from.
	SourcePath string

	// Position is the ordinal position within the resume.
	Position int

	// Embedding is the vector representation for similarity search.
	Embedding []float32

	// Metadata contains chunk-specific key-value pairs.
	Metadata map[string]any
}

// MatchedChunk is a resume chunk returned from a similarity query.
type MatchedChunk struct {
	// Content is the chunk text.
	Content string

	// Metadata is the stored chunk metadata.
	Metadata map[string]any

	// Distance is the cosine distance to the query vector (lower is closer).
	Distance float64
}

// MatchResult holds the resume chunks most relevant to a skill query,
// ordered by ascending distance. Length is at most the requested k.
type MatchResult struct {
	Chunks []MatchedChunk
}

// Empty reports whether the match produced no chunks.
func (m MatchResult) Empty() bool {
	return len(m.Chunks) == 0
}

// Summary joins the matched chunk texts into a single blob, used as the
// candidate-highlights input for drafting and scoring.
func (m MatchResult) Summary() string {
	if len(m.Chunks) == 0 {
		return ""
	}
	out := m.Chunks[0].Content
	for _, c := range m.Chunks[1:] {
		out += " " + c.Content
	}
	return out
}

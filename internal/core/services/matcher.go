package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/coldconnect-labs/coldconnect-cli/internal/chunker"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
	"github.com/coldconnect-labs/coldconnect-cli/internal/logger"
)

// ResumeCollection is the vector store collection holding the active
// resume. The store supports many collections; the application uses one.
const ResumeCollection = "resume"

// Matcher owns the resume side of the pipeline: loading a document into
// the vector store and retrieving the chunks most relevant to a skill
// query.
type Matcher struct {
	reader   driven.DocumentReader
	chunker  *chunker.Chunker
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewMatcher creates a matcher from its collaborators.
func NewMatcher(reader driven.DocumentReader, ch *chunker.Chunker, embedder driven.EmbeddingService, store driven.VectorStore) *Matcher {
	return &Matcher{
		reader:   reader,
		chunker:  ch,
		embedder: embedder,
		store:    store,
	}
}

// Ingest loads the resume at path into the vector store and returns the
// number of chunks held for it. Re-ingesting an unchanged document is a
// no-op. A collection already holding a different document is refused;
// Reset clears it first. The write is all-or-nothing: the embedding
// provider is pinged before anything touches the store.
func (m *Matcher) Ingest(ctx context.Context, path string) (int, error) {
	text, err := m.reader.Read(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("%w: reading %s: %v", domain.ErrIngestion, path, err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: %s contains no text", domain.ErrIngestion, path)
	}

	hash := contentHash(text)
	stored, err := m.store.SourceHash(ctx, ResumeCollection)
	if err != nil {
		return 0, fmt.Errorf("checking ingestion record: %w", err)
	}
	if stored == hash {
		logger.Info("resume unchanged, keeping stored chunks")
		return m.store.Count(ctx, ResumeCollection)
	}
	if stored != "" {
		return 0, fmt.Errorf("%w: run ingest --reset to replace it", domain.ErrCollectionOwned)
	}

	chunks := m.chunker.Chunk(text, path)
	logger.Debug("split %s into %d chunk(s)", path, len(chunks))

	if err := m.embedder.Ping(ctx); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Content
	}
	vectors, err := m.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("%w: got %d embeddings for %d chunks", domain.ErrEmbeddingUnavailable, len(vectors), len(chunks))
	}
	for i := range chunks {
		chunks[i].Embedding = vectors[i]
	}

	if err := m.store.Upsert(ctx, ResumeCollection, chunks); err != nil {
		return 0, fmt.Errorf("storing chunks: %w", err)
	}
	if err := m.store.RecordSource(ctx, ResumeCollection, hash); err != nil {
		return 0, fmt.Errorf("recording ingestion: %w", err)
	}

	logger.Info("ingested %s: %d chunk(s)", path, len(chunks))
	return len(chunks), nil
}

// Match embeds the skill list as a single query and returns the k
// nearest resume chunks. An empty skill list short-circuits to an empty
// result without touching the embedding provider.
func (m *Matcher) Match(ctx context.Context, skills []string, k int) (domain.MatchResult, error) {
	if len(skills) == 0 {
		return domain.MatchResult{}, nil
	}

	query := strings.Join(skills, " ")
	vector, err := m.embedder.Embed(ctx, query)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	chunks, err := m.store.Query(ctx, ResumeCollection, vector, k)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("querying store: %w", err)
	}

	logger.Debug("matched %d chunk(s) for %d skill(s)", len(chunks), len(skills))
	return domain.MatchResult{Chunks: chunks}, nil
}

// Reset clears the resume collection so a different document can be
// loaded.
func (m *Matcher) Reset(ctx context.Context) error {
	return m.store.Clear(ctx, ResumeCollection)
}

// Count returns the number of chunks currently stored for the resume.
func (m *Matcher) Count(ctx context.Context) (int, error) {
	return m.store.Count(ctx, ResumeCollection)
}

// contentHash fingerprints document text for idempotency checks.
func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

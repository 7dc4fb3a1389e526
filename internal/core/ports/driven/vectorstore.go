package driven

import (
	"context"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

// VectorStore is durable storage for resume chunks keyed by a collection
// name, with nearest-neighbour query over the stored embeddings. Data
// survives process restart.
type VectorStore interface {
	// Upsert inserts or replaces the chunks by ID. The write is atomic:
	// either every chunk of the batch is stored or none are.
	Upsert(ctx context.Context, collection string, chunks []domain.ResumeChunk) error

	// Count returns the number of chunks stored in the collection.
	Count(ctx context.Context, collection string) (int, error)

	// Query returns up to k chunks nearest to the query vector by
	// ascending cosine distance. Ties are broken by insertion order.
	Query(ctx context.Context, collection string, vector []float32, k int) ([]domain.MatchedChunk, error)

	// SourceHash returns the content hash of the document held by the
	// collection, or empty when the collection has never been loaded.
	SourceHash(ctx context.Context, collection string) (string, error)

	// Clear removes every chunk in the collection and its ingestion
	// record. This is the only chunk deletion path.
	Clear(ctx context.Context, collection string) error

	// RecordSource stores the content hash of the ingested document.
	RecordSource(ctx context.Context, collection, hash string) error

	// Close releases resources.
	Close() error
}

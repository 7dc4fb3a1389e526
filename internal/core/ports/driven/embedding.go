package driven

import "context"

// EmbeddingService generates vector embeddings from text.
//
// Note: this is separate from VectorStore, which stores and searches
// vectors. EmbeddingService generates them.
//
// Implementations may include:
//   - Gemini (gemini-embedding-001)
//   - Ollama (nomic-embed-text, all-minilm)
type EmbeddingService interface {
	// Embed generates a vector embedding for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts efficiently.
	// This is more efficient than calling Embed in a loop for large batches.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g., 768, 3072).
	// This is determined by the model and must match stored vectors.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request. Ingestion pings before committing any writes so a
	// batch is either embedded in full or not started.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

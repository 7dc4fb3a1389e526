package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding provider is
	// unreachable or not configured. Ingestion and matching abort
	// without partial writes.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrLLMUnavailable indicates the generative model is unreachable
	// or not configured. Extraction and drafting are disabled.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrIngestion indicates the resume document is unreadable or
	// empty. The vector store is left unchanged.
	ErrIngestion = errors.New("resume ingestion failed")

	// ErrCollectionOwned indicates the target collection already holds
	// a different document. Re-ingesting the same file is a no-op;
	// loading a new resume requires clearing the collection first.
	ErrCollectionOwned = errors.New("collection already holds a different document")

	// ErrMissingConfig indicates required credentials or settings are
	// absent at startup, before any pipeline step runs.
	ErrMissingConfig = errors.New("missing required configuration")
)

// ExtractionError indicates the generative model's output failed JSON
// validation. Raw carries the model response for operator diagnosis; the
// extractor itself never retries, the caller decides whether to re-run.
type ExtractionError struct {
	Raw string
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("job extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

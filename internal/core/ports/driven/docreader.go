package driven

import "context"

// DocumentReader extracts plain text from a resume file on disk.
// Unreadable or corrupt files surface as errors the caller wraps into
// the ingestion failure taxonomy.
//
// Implementations cover PDF, DOCX and plain text.
type DocumentReader interface {
	// Read returns the extracted text of the document at path.
	Read(ctx context.Context, path string) (string, error)
}

// PageFetcher returns the raw text of a job-posting page. The core never
// performs network I/O itself; it consumes the fetched string through
// the normaliser.
type PageFetcher interface {
	// Fetch retrieves the page at url and returns its raw text.
	Fetch(ctx context.Context, url string) (string, error)
}

// Package docreader extracts plain text from resume files. The format
// is chosen by file extension: PDF, DOCX or plain text.
package docreader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// Reader reads resume documents from the local filesystem.
type Reader struct{}

// New creates a new document reader.
func New() *Reader {
	return &Reader{}
}

// Read returns the extracted text of the document at path.
func (r *Reader) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".docx":
		return readDocx(path)
	case ".txt", ".md", "":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

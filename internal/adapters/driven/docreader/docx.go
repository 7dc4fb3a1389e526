package docreader

import (
	"fmt"

	"github.com/nguyenthenguyen/docx"
)

// readDocx extracts the document body text from a DOCX file.
func readDocx(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

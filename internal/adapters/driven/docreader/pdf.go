package docreader

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// readPDF extracts the plain text of every page in the PDF. Pages whose
// content stream cannot be decoded are skipped rather than failing the
// whole document.
func readPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

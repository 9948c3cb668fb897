// Package pdfdoc extracts plain text from PDF documents on the local filesystem.
package pdfdoc

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText returns the concatenated plain text of the document. Scanned PDFs without a
// text layer produce an empty string, not an error.
func (t *TextExtractor) ExtractText(path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF document \"%s\": %w", path, err)
	}
	defer file.Close()
	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract text from \"%s\": %w", path, err)
	}
	var buffer bytes.Buffer
	_, err = buffer.ReadFrom(textReader)
	if err != nil {
		return "", err
	}
	return buffer.String(), nil
}

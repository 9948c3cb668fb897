package document

import (
	"context"
	"fmt"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const couldntLoadDocumentFormatMessage = "%s Description: \"no content because the document failed to load\""
const documentContextFormatMessage = "Content of the document %s: \"%s\"\nQuery: \"%s\" (answer the query using the provided document content)"

// TextExtractor extracts plain text from a document on disk.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

type filter struct {
	textExtractor  TextExtractor
	logger         common.Logger
	maxContentSize int
}

// NewFilter this prompt filter replaces a PDF path mentioned in the prompt with the document's
// extracted text so that the model can answer questions about it.
func NewFilter(textExtractor TextExtractor, config *common.Config, logger common.Logger) domain.PromptFilter {
	return &filter{
		textExtractor:  textExtractor,
		logger:         logger,
		maxContentSize: config.GetIntOrDefault("documentMaxContentSize", 2000),
	}
}

func (f *filter) Apply(ctx context.Context, prompt string, next domain.NextPromptFunc) (string, error) {
	path := f.findDocumentPath(prompt)
	if path == "" {
		return next(ctx, prompt)
	}
	content, err := f.textExtractor.ExtractText(path)
	if err != nil {
		f.logger.Log(err.Error())
		return next(ctx, fmt.Sprintf(couldntLoadDocumentFormatMessage, prompt))
	}
	content = f.preprocessContent(content)
	if content == "" {
		return next(ctx, fmt.Sprintf(couldntLoadDocumentFormatMessage, prompt))
	}
	promptWithoutPath := strings.TrimSpace(strings.ReplaceAll(prompt, path, ""))
	return next(ctx, fmt.Sprintf(documentContextFormatMessage, path, content, promptWithoutPath))
}

// findDocumentPath returns the first whitespace-separated token which looks like a PDF path.
func (f *filter) findDocumentPath(prompt string) string {
	for _, token := range strings.Fields(prompt) {
		if common.IsPDFFormat(token) {
			return token
		}
	}
	return ""
}

func (f *filter) preprocessContent(content string) string {
	if len(content) > f.maxContentSize {
		content = content[0:f.maxContentSize]
	}
	content = strings.ReplaceAll(content, "\n", " ")
	content = strings.ReplaceAll(content, "\r", "")
	return strings.TrimSpace(content)
}

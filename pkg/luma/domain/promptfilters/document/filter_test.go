package document

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

type stubExtractor struct {
	text          string
	err           error
	extractedFrom string
}

func (s *stubExtractor) ExtractText(path string) (string, error) {
	s.extractedFrom = path
	return s.text, s.err
}

func passthrough(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

func newTestFilter(extractor TextExtractor) domain.PromptFilter {
	return NewFilter(extractor, common.EmptyConfig(), common.NewNullLogger())
}

func TestApplyInjectsDocumentContent(t *testing.T) {
	extractor := &stubExtractor{text: "Chapter 1.\nIt was a dark night."}
	filter := newTestFilter(extractor)
	prompt, err := filter.Apply(context.Background(), "summarize /home/user/report.pdf for me", passthrough)
	require.NoError(t, err)
	assert.Equal(t, "/home/user/report.pdf", extractor.extractedFrom)
	assert.Contains(t, prompt, "Chapter 1. It was a dark night.")
	assert.Contains(t, prompt, "summarize  for me")
}

func TestApplyWithoutDocument(t *testing.T) {
	filter := newTestFilter(&stubExtractor{text: "ignored"})
	prompt, err := filter.Apply(context.Background(), "summarize this chat", passthrough)
	require.NoError(t, err)
	assert.Equal(t, "summarize this chat", prompt)
}

func TestApplyExtractionFailureKeptVisible(t *testing.T) {
	filter := newTestFilter(&stubExtractor{err: errors.New("corrupt file")})
	prompt, err := filter.Apply(context.Background(), "read broken.pdf", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "no content because the document failed to load")
}

func TestApplyEmptyTextLayerKeptVisible(t *testing.T) {
	filter := newTestFilter(&stubExtractor{text: "   "})
	prompt, err := filter.Apply(context.Background(), "read scanned.pdf", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "no content because the document failed to load")
}

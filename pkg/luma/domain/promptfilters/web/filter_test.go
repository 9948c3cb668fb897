package web

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

type stubURLFinder struct {
	urls []string
}

func (s *stubURLFinder) FindURLs(str string) []string {
	return s.urls
}

type stubExtractor struct {
	content string
	err     error
}

func (s *stubExtractor) ExtractPageContentFromURL(url string) (string, error) {
	return s.content, s.err
}

func passthrough(ctx context.Context, prompt string) (string, error) {
	return prompt, nil
}

func newTestFilter(urls []string, extractor PageContentExtractor) domain.PromptFilter {
	return NewFilter(&stubURLFinder{urls: urls}, extractor, common.EmptyConfig(), common.NewNullLogger())
}

func TestApplyWithoutURLs(t *testing.T) {
	filter := newTestFilter(nil, &stubExtractor{})
	prompt, err := filter.Apply(context.Background(), "no links here", passthrough)
	require.NoError(t, err)
	assert.Equal(t, "no links here", prompt)
}

func TestApplyInjectsPageContent(t *testing.T) {
	filter := newTestFilter([]string{"https://example.com"}, &stubExtractor{content: "Example Domain"})
	prompt, err := filter.Apply(context.Background(), "summarize https://example.com please", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Example Domain")
	assert.Contains(t, prompt, "summarize  please")
}

func TestApplyKeepsFailureVisible(t *testing.T) {
	filter := newTestFilter([]string{"https://example.com"}, &stubExtractor{err: errors.New("timeout")})
	prompt, err := filter.Apply(context.Background(), "open https://example.com", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "no description because the URL failed to load")
}

func TestApplySkipsImageURLs(t *testing.T) {
	filter := newTestFilter([]string{"https://example.com/cat.png"}, &stubExtractor{content: "should not appear"})
	prompt, err := filter.Apply(context.Background(), "look at https://example.com/cat.png", passthrough)
	require.NoError(t, err)
	assert.Equal(t, "look at https://example.com/cat.png", prompt)
}

func TestApplyTruncatesLongContent(t *testing.T) {
	long := make([]byte, 5000)
	for i := range long {
		long[i] = 'a'
	}
	filter := NewFilter(
		&stubURLFinder{urls: []string{"https://example.com"}},
		&stubExtractor{content: string(long)},
		common.NewConfig(map[string]any{"webMaxPageContentSize": 10}),
		common.NewNullLogger(),
	)
	prompt, err := filter.Apply(context.Background(), "read https://example.com", passthrough)
	require.NoError(t, err)
	assert.Contains(t, prompt, "\"aaaaaaaaaa\"")
	assert.NotContains(t, prompt, "aaaaaaaaaaa\"")
}

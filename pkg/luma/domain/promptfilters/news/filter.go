package news

import (
	"context"
	"fmt"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const newsContextFormatMessage = "%s\nRecent headlines:\n%s(mention a headline only if the query asks about news)"

// Item one news headline as served by the provider.
type Item struct {
	PublishedDate string
	Title         string
	Description   string
}

// Provider serves recent news headlines.
type Provider interface {
	GetHeadlines(maxCount int) ([]Item, error)
}

type filter struct {
	provider     Provider
	logger       common.Logger
	maxNewsCount int
}

// NewFilter this prompt filter injects recent headlines into queries which ask about news,
// since a local model knows nothing past its training cutoff.
func NewFilter(provider Provider, config *common.Config, logger common.Logger) domain.PromptFilter {
	return &filter{
		provider:     provider,
		logger:       logger,
		maxNewsCount: config.GetIntOrDefault("newsMaxCount", 5),
	}
}

func (f *filter) Apply(ctx context.Context, prompt string, next domain.NextPromptFunc) (string, error) {
	if !f.shouldApply(prompt) {
		return next(ctx, prompt)
	}
	items, err := f.provider.GetHeadlines(f.maxNewsCount)
	if err != nil {
		f.logger.Log("failed to load news: " + err.Error())
		return next(ctx, prompt)
	}
	if len(items) == 0 {
		return next(ctx, prompt)
	}
	var headlines strings.Builder
	for _, item := range items {
		headlines.WriteString(fmt.Sprintf("- %s (%s)\n", item.Title, item.PublishedDate))
	}
	return next(ctx, fmt.Sprintf(newsContextFormatMessage, prompt, headlines.String()))
}

func (f *filter) shouldApply(prompt string) bool {
	lowered := strings.ToLower(prompt)
	return strings.Contains(lowered, "news") || strings.Contains(lowered, "headline")
}

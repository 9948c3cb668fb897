package wiki

import (
	"context"
	"fmt"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const wikiContextFormatMessage = "%s\nBackground found in the encyclopedia: \"%s\" (use the background only if it is relevant to the query)"

// Trigger phrases which suggest the user is asking about a topic we can look up.
var triggerPrefixes = []string{
	"what is ",
	"what are ",
	"who is ",
	"who was ",
	"tell me about ",
}

// ArticleProvider searches encyclopedia articles and fetches their summaries.
type ArticleProvider interface {
	Search(searchString string, maxArticleCount int) ([]string, error)
	GetSummary(articleName string, maxArticleSentenceCount int) (string, error)
}

type filter struct {
	articleProvider         ArticleProvider
	logger                  common.Logger
	maxArticleCount         int
	maxArticleSentenceCount int
}

// NewFilter this prompt filter enriches "what is X"-style queries with a short encyclopedia
// summary so that small local models don't have to rely on their own spotty world knowledge.
func NewFilter(articleProvider ArticleProvider, config *common.Config, logger common.Logger) domain.PromptFilter {
	return &filter{
		articleProvider:         articleProvider,
		logger:                  logger,
		maxArticleCount:         config.GetIntOrDefault("wikiMaxArticleCount", 1),
		maxArticleSentenceCount: config.GetIntOrDefault("wikiMaxArticleSentenceCount", 3),
	}
}

func (f *filter) Apply(ctx context.Context, prompt string, next domain.NextPromptFunc) (string, error) {
	topic := f.extractTopic(prompt)
	if topic == "" {
		return next(ctx, prompt)
	}
	articleNames, err := f.articleProvider.Search(topic, f.maxArticleCount)
	if err != nil || len(articleNames) == 0 {
		if err != nil {
			f.logger.Log(err.Error())
		}
		return next(ctx, prompt)
	}
	summary, err := f.articleProvider.GetSummary(articleNames[0], f.maxArticleSentenceCount)
	if err != nil || summary == "" {
		if err != nil {
			f.logger.Log(err.Error())
		}
		return next(ctx, prompt)
	}
	return next(ctx, fmt.Sprintf(wikiContextFormatMessage, prompt, summary))
}

func (f *filter) extractTopic(prompt string) string {
	lowered := strings.ToLower(strings.TrimSpace(prompt))
	for _, prefix := range triggerPrefixes {
		if strings.HasPrefix(lowered, prefix) {
			topic := strings.TrimSpace(prompt[len(prefix):])
			topic = strings.TrimRight(topic, "?!. ")
			return topic
		}
	}
	return ""
}

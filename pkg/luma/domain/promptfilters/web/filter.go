package web

import (
	"context"
	"fmt"
	"strings"

	"lumachat.dev/luma/pkg/common"
	"lumachat.dev/luma/pkg/luma/domain"
)

const couldntLoadURLFormatMessage = "%s Description: \"no description because the URL failed to load\""
const urlContextFormatMessage = "%s\nContext found at the URL: \"%s\"\nQuery: \"%s\" (answer the query using the provided context)"

// URLFinder finds all URLs in a message.
type URLFinder interface {
	FindURLs(str string) []string
}

// PageContentExtractor extracts readable text content from the page behind a URL.
type PageContentExtractor interface {
	ExtractPageContentFromURL(url string) (string, error)
}

type filter struct {
	urlFinder            URLFinder
	pageContentExtractor PageContentExtractor
	logger               common.Logger
	maxContentSize       int
}

// NewFilter this prompt filter allows the model to see the content of the given URLs.
// Limitations:
// - only sees the first URL, if there are several URLs in a message
// - the whole process can stall if the given URL dynamically produces infinite output (see common.ReadAllFromURL)
func NewFilter(
	urlFinder URLFinder,
	pageContentExtractor PageContentExtractor,
	config *common.Config,
	logger common.Logger,
) domain.PromptFilter {
	return &filter{
		urlFinder:            urlFinder,
		pageContentExtractor: pageContentExtractor,
		logger:               logger,
		maxContentSize:       config.GetIntOrDefault("webMaxPageContentSize", 1000),
	}
}

func (f *filter) Apply(ctx context.Context, prompt string, next domain.NextPromptFunc) (string, error) {
	urls := f.urlFinder.FindURLs(prompt)
	if len(urls) == 0 {
		return next(ctx, prompt)
	}
	url := urls[0]                 // let's do it with only one URL so far (a known limitation)
	if common.IsImageFormat(url) { // for images, we have the image filter
		return next(ctx, prompt)
	}
	pageContent, err := f.pageContentExtractor.ExtractPageContentFromURL(url)
	if err != nil {
		f.logger.Log(err.Error())
		// It's important to keep the failure visible to the model so that it can respond that the URL doesn't load.
		return next(ctx, fmt.Sprintf(couldntLoadURLFormatMessage, prompt))
	}
	pageContent = f.preprocessPageContent(pageContent)
	if pageContent == "" {
		return next(ctx, fmt.Sprintf(couldntLoadURLFormatMessage, prompt))
	}
	promptWithoutURL := f.removeURL(prompt, url)
	return next(ctx, fmt.Sprintf(urlContextFormatMessage, url, pageContent, promptWithoutURL))
}

func (f *filter) preprocessPageContent(pageContent string) string {
	if len(pageContent) > f.maxContentSize {
		pageContent = pageContent[0:f.maxContentSize]
	}
	pageContent = strings.ReplaceAll(pageContent, "\n", " ")
	pageContent = strings.ReplaceAll(pageContent, "\r", "")
	return strings.TrimSpace(pageContent)
}

func (f *filter) removeURL(prompt, url string) string {
	return strings.TrimSpace(strings.ReplaceAll(prompt, url, ""))
}

package domain

import "context"

type NextPromptFunc func(ctx context.Context, prompt string) (string, error)

// PromptFilter a chat request passes through a chain of prompt filters before it reaches
// the language model. A filter is able to:
// - enrich the prompt with additional context (a web page, a wiki summary, news headlines)
// - rewrite the prompt entirely (for example, replacing an image URL with its description)
// - pass control to the next filters in the chain
// Filters allow to write modular, extensible code.
type PromptFilter interface {
	// Apply implements a filter.
	// `next` should always be called when returning from the function (unless we want to stop the chain).
	Apply(ctx context.Context, prompt string, next NextPromptFunc) (string, error)
}

package domain

import (
	"context"
	"sync"
)

// ChatService mediates between application callers and the language model: it runs the prompt
// through the chain of prompt filters and then streams the completion back to the caller.
// Only 1 request can be processed at a time per service instance because we target commodity
// hardware which usually can't process two inference requests simultaneously. Independent
// service instances are fully independent.
type ChatService struct {
	mutex         sync.Mutex
	languageModel LanguageModel
	promptFilters []PromptFilter
}

func NewChatService(languageModel LanguageModel, promptFilters []PromptFilter) *ChatService {
	return &ChatService{
		languageModel: languageModel,
		promptFilters: promptFilters,
	}
}

// Respond completes the prompt and returns the full response text in one piece.
func (c *ChatService) Respond(ctx context.Context, prompt string) (string, error) {
	return c.RespondStream(ctx, prompt, nil)
}

// RespondStream completes the prompt, invoking `onDelta` with each newly revealed piece of
// response text, and returns the full response at the end. `onDelta` may be nil.
func (c *ChatService) RespondStream(ctx context.Context, prompt string, onDelta func(text string)) (string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	enriched, err := c.applyPromptFilterAtIndex(ctx, prompt, 0)
	if err != nil {
		// A broken filter shouldn't break chat: fall back to the raw prompt.
		enriched = prompt
	}
	return c.languageModel.CompleteStream(ctx, enriched, onDelta)
}

func (c *ChatService) applyPromptFilterAtIndex(ctx context.Context, prompt string, index int) (string, error) {
	var nextPromptFunc NextPromptFunc
	if index < len(c.promptFilters)-1 {
		nextPromptFunc = func(ctx context.Context, prompt string) (string, error) {
			return c.applyPromptFilterAtIndex(ctx, prompt, index+1)
		}
	} else {
		nextPromptFunc = func(ctx context.Context, prompt string) (string, error) {
			return prompt, nil
		}
	}
	if len(c.promptFilters) == 0 {
		return prompt, nil
	}
	return c.promptFilters[index].Apply(ctx, prompt, nextPromptFunc)
}

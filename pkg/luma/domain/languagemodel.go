package domain

import "context"

// LanguageModel a generic interface for a large language model (LLM) backend which completes
// chat-style prompts. Implementations own all transport concerns (timeouts, retries, wire
// formats); the domain only sees clean response text.
type LanguageModel interface {
	// Name the name of the model. Useful for debugging.
	Name() string
	// Complete completes the given prompt and returns the full response text in one piece.
	Complete(ctx context.Context, prompt string) (string, error)
	// CompleteStream completes the given prompt, invoking `onDelta` with each newly revealed
	// piece of response text as it arrives, and returns the full response text at the end.
	// `onDelta` may be nil, in which case the call degrades to Complete.
	CompleteStream(ctx context.Context, prompt string, onDelta func(text string)) (string, error)
	// IsHealthy returns whether the backend server is reachable.
	IsHealthy() bool
}

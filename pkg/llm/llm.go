package llm

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when the provider has no credentials.
	ErrNotConfigured = errors.New("llm provider is not configured")
	// ErrEmptyResponse is returned when the provider answered with no text.
	ErrEmptyResponse = errors.New("llm returned empty response")
)

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	// AskJSON asks for a single JSON object with low sampling temperature.
	AskJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Provider() string
	Model() string
}

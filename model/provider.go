package model

import (
	"context"
)

// Provider abstracts completion backends (OpenAI, Anthropic, Ollama)
// using provider-agnostic types from the model layer.
//
// This interface is defined in the model package (not provider package) so the
// bot package can depend on it without importing any SDK.
type Provider interface {
	// Complete sends messages to modelName and returns the text of the first choice.
	// It performs exactly one request: no streaming, no retry.
	Complete(ctx context.Context, modelName string, messages []Message) (string, error)

	// Name returns the provider ID ("openai", "anthropic", ...) for logs and errors.
	Name() string

	// Ping checks if the provider is reachable.
	Ping(ctx context.Context) error
}

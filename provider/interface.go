// Package provider implements the completion backends behind model.Provider.
//
// The bot supports several completion backends (OpenAI, OpenRouter, Anthropic,
// Ollama) through the common model.Provider interface. Command handlers only
// ever see model.Message values and a backend model name; SDK types stay
// inside this package.
//
// # Architecture
//
//   - model.Provider defines the contract (interface)
//   - provider.OpenAIProvider implements it with openai-go (also OpenRouter)
//   - provider.AnthropicProvider implements it with anthropic-sdk-go
//   - provider.OllamaProvider implements it with the ollama API client
//   - provider.NewProvider() factory creates providers from config
//
// Every backend performs exactly one request per Complete call. SDK level
// retries are disabled, and every failure is returned as *CompletionError.
//
// # Usage
//
//	cfg := provider.Config{
//	    Type:   provider.ProviderTypeOpenAI,
//	    APIKey: os.Getenv("OPENAI_API_KEY"),
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    // handle error
//	}
//	reply, err := p.Complete(ctx, "gpt-3.5-turbo", messages)
package provider

import "net/http"

// ProviderType identifies the provider implementation.
type ProviderType string

const (
	ProviderTypeOllama     ProviderType = "ollama"
	ProviderTypeOpenRouter ProviderType = "openrouter"
	ProviderTypeOpenAI     ProviderType = "openai"
	ProviderTypeAnthropic  ProviderType = "anthropic"
)

// Config holds provider-specific configuration.
type Config struct {
	Type    ProviderType
	BaseURL string
	APIKey  string // For OpenAI/OpenRouter/Anthropic (unused for Ollama)

	// HTTPClient overrides the transport. Nil means the SDK default.
	HTTPClient *http.Client
}

package provider

import (
	"fmt"

	"memorybot/model"

	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/openai/openai-go/v3/option"
)

// NewProvider creates a provider based on configuration.
//
// Supported provider types:
//   - ProviderTypeOpenAI: OpenAI API (default backend)
//   - ProviderTypeOpenRouter: OpenRouter, OpenAI-compatible
//   - ProviderTypeAnthropic: Anthropic API
//   - ProviderTypeOllama: Local Ollama server
//
// Returns an error if the provider type is unknown or the provider-specific
// constructor fails (e.g., missing API key).
//
// Example:
//
//	cfg := provider.Config{
//	    Type:    provider.ProviderTypeOpenAI,
//	    BaseURL: "https://api.openai.com/v1",
//	    APIKey:  "sk-...",
//	}
//	p, err := provider.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
func NewProvider(cfg Config) (model.Provider, error) {
	switch cfg.Type {
	case ProviderTypeOpenAI:
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey, openAIOptions(cfg)...)
	case ProviderTypeOpenRouter:
		return NewOpenRouterProvider(cfg.BaseURL, cfg.APIKey, openAIOptions(cfg)...)
	case ProviderTypeAnthropic:
		return NewAnthropicProvider(cfg.BaseURL, cfg.APIKey, anthropicOptions(cfg)...)
	case ProviderTypeOllama:
		return NewOllamaProvider(cfg.BaseURL, cfg)
	default:
		return nil, fmt.Errorf("unknown provider type: %s", cfg.Type)
	}
}

// MapProviderIDToType converts a config provider ID to a factory ProviderType.
//
// For unknown IDs, returns the ID cast as ProviderType (factory will error).
func MapProviderIDToType(id string) ProviderType {
	switch id {
	case "ollama":
		return ProviderTypeOllama
	case "openrouter":
		return ProviderTypeOpenRouter
	case "openai", "":
		return ProviderTypeOpenAI
	case "anthropic":
		return ProviderTypeAnthropic
	default:
		return ProviderType(id)
	}
}

func openAIOptions(cfg Config) []option.RequestOption {
	if cfg.HTTPClient == nil {
		return nil
	}
	return []option.RequestOption{option.WithHTTPClient(cfg.HTTPClient)}
}

func anthropicOptions(cfg Config) []anthropicoption.RequestOption {
	if cfg.HTTPClient == nil {
		return nil
	}
	return []anthropicoption.RequestOption{anthropicoption.WithHTTPClient(cfg.HTTPClient)}
}

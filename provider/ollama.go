package provider

import (
	"context"
	"fmt"

	"memorybot/model"
	"memorybot/ollama"
)

// OllamaProvider wraps ollama.Client to implement the Provider interface.
//
// This provider converts model.Message to api.Message and collects the single
// non-streamed response.
type OllamaProvider struct {
	client *ollama.Client
}

// NewOllamaProvider creates a new Ollama provider instance.
//
// Parameters:
//   - baseURL: The Ollama server URL (e.g., "http://localhost:11434").
//     If empty, defaults to "http://localhost:11434".
//
// Returns an error if the baseURL is invalid.
func NewOllamaProvider(baseURL string, cfg Config) (*OllamaProvider, error) {
	client, err := ollama.NewClient(baseURL, cfg.HTTPClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	return &OllamaProvider{
		client: client,
	}, nil
}

// Complete implements Provider.Complete.
func (p *OllamaProvider) Complete(ctx context.Context, modelName string, messages []model.Message) (string, error) {
	reply, err := p.client.Chat(ctx, modelName, ConvertToOllamaMessages(messages))
	if err != nil {
		return "", newCompletionError(string(ProviderTypeOllama), modelName, err)
	}
	if reply == "" {
		return "", newCompletionError(string(ProviderTypeOllama), modelName, ErrEmptyReply)
	}
	return reply, nil
}

// Name implements Provider.Name.
func (p *OllamaProvider) Name() string {
	return string(ProviderTypeOllama)
}

// Ping implements Provider.Ping against the server's model list.
//
// Returns an error if the server is not reachable or times out.
func (p *OllamaProvider) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx); err != nil {
		return fmt.Errorf("ollama ping %s failed: %w", p.client.BaseURL(), err)
	}
	return nil
}

package provider

import (
	"context"
	"errors"
	"fmt"

	"memorybot/model"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// ErrNoChoices is wrapped into a CompletionError when the API answers
// successfully but with an empty choice list.
var ErrNoChoices = errors.New("response contained no choices")

// ErrEmptyReply is wrapped into a CompletionError when the first choice has
// no text, as with a refusal.
var ErrEmptyReply = errors.New("response contained an empty reply")

// OpenAIProvider implements the Provider interface using OpenAI's official API.
// It also serves OpenRouter and any other OpenAI-compatible base URL.
type OpenAIProvider struct {
	client  openai.Client
	id      string
	baseURL string
}

// NewOpenAIProvider creates a new OpenAI provider instance.
//
// Parameters:
//   - baseURL: OpenAI API base URL (default: "https://api.openai.com/v1")
//   - apiKey: OpenAI API key (required)
//
// Returns an error if the API key is missing.
func NewOpenAIProvider(baseURL, apiKey string, opts ...option.RequestOption) (*OpenAIProvider, error) {
	return newOpenAICompatible(string(ProviderTypeOpenAI), baseURL, "https://api.openai.com/v1", apiKey, opts...)
}

// NewOpenRouterProvider creates an OpenAI-compatible provider pointed at OpenRouter.
func NewOpenRouterProvider(baseURL, apiKey string, opts ...option.RequestOption) (*OpenAIProvider, error) {
	return newOpenAICompatible(string(ProviderTypeOpenRouter), baseURL, "https://openrouter.ai/api/v1", apiKey, opts...)
}

func newOpenAICompatible(id, baseURL, defaultBaseURL, apiKey string, opts ...option.RequestOption) (*OpenAIProvider, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%s API key is required", id)
	}

	clientOpts := []option.RequestOption{
		option.WithBaseURL(baseURL),
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	clientOpts = append(clientOpts, opts...)

	return &OpenAIProvider{
		client:  openai.NewClient(clientOpts...),
		id:      id,
		baseURL: baseURL,
	}, nil
}

// Complete implements Provider.Complete with a single non-streaming request.
func (p *OpenAIProvider) Complete(ctx context.Context, modelName string, messages []model.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Messages: ConvertToOpenAIMessages(messages),
		Model:    openai.ChatModel(modelName),
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", newCompletionError(p.id, modelName, err)
	}
	if len(resp.Choices) == 0 {
		return "", newCompletionError(p.id, modelName, ErrNoChoices)
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", newCompletionError(p.id, modelName, ErrEmptyReply)
	}
	return content, nil
}

// Name implements Provider.Name.
func (p *OpenAIProvider) Name() string {
	return p.id
}

// Ping implements Provider.Ping by attempting to list models.
func (p *OpenAIProvider) Ping(ctx context.Context) error {
	if _, err := p.client.Models.List(ctx); err != nil {
		return fmt.Errorf("%s ping failed: %w", p.id, err)
	}
	return nil
}

package testutil

import (
	"context"
	"sync"

	"memorybot/model"
)

// Call records one Complete invocation.
type Call struct {
	Model    string
	Messages []model.Message
}

// MockProvider implements model.Provider for testing
type MockProvider struct {
	// Configurable responses
	CompleteFunc func(ctx context.Context, modelName string, messages []model.Message) (string, error)
	PingFunc     func(ctx context.Context) error

	mu    sync.Mutex
	calls []Call
}

// NewMockProvider creates a mock provider that always answers reply
func NewMockProvider(reply string) *MockProvider {
	return &MockProvider{
		CompleteFunc: func(ctx context.Context, modelName string, messages []model.Message) (string, error) {
			return reply, nil
		},
		PingFunc: func(ctx context.Context) error { return nil },
	}
}

// NewFailingProvider creates a mock provider whose every completion fails with err
func NewFailingProvider(err error) *MockProvider {
	m := NewMockProvider("")
	m.CompleteFunc = func(ctx context.Context, modelName string, messages []model.Message) (string, error) {
		return "", err
	}
	return m
}

func (m *MockProvider) Complete(ctx context.Context, modelName string, messages []model.Message) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Model: modelName, Messages: append([]model.Message(nil), messages...)})
	m.mu.Unlock()
	return m.CompleteFunc(ctx, modelName, messages)
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Ping(ctx context.Context) error {
	return m.PingFunc(ctx)
}

// Calls returns a copy of every Complete call so far
func (m *MockProvider) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

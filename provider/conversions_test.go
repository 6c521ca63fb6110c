package provider

import (
	"encoding/json"
	"memorybot/model"
	"strings"
	"testing"

	"github.com/ollama/ollama/api"
)

func TestConvertToOllamaMessages(t *testing.T) {
	tests := []struct {
		name     string
		input    []model.Message
		expected []api.Message
	}{
		{
			name:     "empty slice",
			input:    []model.Message{},
			expected: []api.Message{},
		},
		{
			name: "system then user",
			input: []model.Message{
				model.SystemMessage("You are helpful."),
				model.UserMessage("Hello"),
			},
			expected: []api.Message{
				{Role: "system", Content: "You are helpful."},
				{Role: "user", Content: "Hello"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ConvertToOllamaMessages(tt.input)

			if len(result) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d, want %d", len(result), len(tt.expected))
			}

			for i, msg := range result {
				if msg.Role != tt.expected[i].Role {
					t.Errorf("message %d role: got %q, want %q", i, msg.Role, tt.expected[i].Role)
				}
				if msg.Content != tt.expected[i].Content {
					t.Errorf("message %d content: got %q, want %q", i, msg.Content, tt.expected[i].Content)
				}
			}
		})
	}
}

func TestConvertToOpenAIMessages(t *testing.T) {
	input := []model.Message{
		model.SystemMessage("sys"),
		model.UserMessage("hi"),
		{Role: model.RoleAssistant, Content: "hello"},
		{Role: "tool", Content: "odd"},
	}

	result := ConvertToOpenAIMessages(input)
	if len(result) != len(input) {
		t.Fatalf("length mismatch: got %d, want %d", len(result), len(input))
	}

	wantRoles := []string{"system", "user", "assistant", "user"}
	for i, msg := range result {
		b, err := json.Marshal(msg)
		if err != nil {
			t.Fatalf("message %d: marshal: %v", i, err)
		}
		var decoded struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		if err := json.Unmarshal(b, &decoded); err != nil {
			t.Fatalf("message %d: unmarshal %s: %v", i, b, err)
		}
		if decoded.Role != wantRoles[i] {
			t.Errorf("message %d role: got %q, want %q", i, decoded.Role, wantRoles[i])
		}
		if decoded.Content != input[i].Content {
			t.Errorf("message %d content: got %q, want %q", i, decoded.Content, input[i].Content)
		}
	}
}

func TestConvertToAnthropicMessagesLiftsSystem(t *testing.T) {
	input := []model.Message{
		model.SystemMessage("memory: {}"),
		model.UserMessage("what do you know?"),
	}

	msgs, system := convertToAnthropicMessages(input)

	if len(system) != 1 || system[0].Text != "memory: {}" {
		t.Fatalf("system blocks = %+v, want one block with the system prompt", system)
	}
	if len(msgs) != 1 {
		t.Fatalf("got %d messages, want 1", len(msgs))
	}
	b, err := json.Marshal(msgs[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"role":"user"`) || !strings.Contains(string(b), "what do you know?") {
		t.Errorf("unexpected user message: %s", b)
	}
}

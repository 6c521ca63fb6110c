package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"memorybot/model"
)

// SingleUserMessage returns a single user message for simple tests
func SingleUserMessage(content string) []model.Message {
	return []model.Message{model.UserMessage(content)}
}

// SystemAndUser returns the system-then-user pair every command sends
func SystemAndUser(system, user string) []model.Message {
	return []model.Message{model.SystemMessage(system), model.UserMessage(user)}
}

// ChatRequest is the subset of an OpenAI chat completion request the fake server checks.
type ChatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

// OpenAIServer fakes the /chat/completions endpoint of an OpenAI-compatible API.
type OpenAIServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []ChatRequest
	status   int
	body     string
}

// NewOpenAIServer answers every completion with reply as the first choice.
func NewOpenAIServer(reply string) *OpenAIServer {
	s := &OpenAIServer{status: http.StatusOK}
	resp := map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1700000000,
		"model":   "gpt-3.5-turbo",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": reply},
		}},
	}
	b, _ := json.Marshal(resp)
	s.body = string(b)

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Fail makes the server answer every request with status and an OpenAI error body.
func (s *OpenAIServer) Fail(status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, _ := json.Marshal(map[string]any{
		"error": map[string]any{"message": message, "type": "invalid_request_error"},
	})
	s.status = status
	s.body = string(b)
}

// SetBody replaces the success body verbatim.
func (s *OpenAIServer) SetBody(body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.body = body
}

func (s *OpenAIServer) handle(w http.ResponseWriter, r *http.Request) {
	if strings.HasSuffix(r.URL.Path, "/models") {
		s.handleModels(w)
		return
	}

	var req ChatRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	s.mu.Lock()
	s.requests = append(s.requests, req)
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// handleModels answers the model list used by Ping. A server set to Fail
// fails here too.
func (s *OpenAIServer) handleModels(w http.ResponseWriter) {
	s.mu.Lock()
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if status == http.StatusOK {
		body = `{"object":"list","data":[{"id":"gpt-4","object":"model","created":1,"owned_by":"openai"}]}`
	}
	_, _ = w.Write([]byte(body))
}

// Requests returns every decoded request received so far.
func (s *OpenAIServer) Requests() []ChatRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ChatRequest(nil), s.requests...)
}

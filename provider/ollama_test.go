package provider

import (
	"context"
	"encoding/json"
	"errors"
	"memorybot/provider/testutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestOllamaComplete(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Stream   *bool  `json:"stream"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"model":"llama3.1","created_at":"2024-01-01T00:00:00Z","message":{"role":"assistant","content":"local reply"},"done":true}`))
	}))
	defer srv.Close()

	p, err := NewOllamaProvider(srv.URL, Config{})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	reply, err := p.Complete(context.Background(), "llama3.1", testutil.SystemAndUser("sys", "hi"))
	if err != nil {
		t.Fatalf("Complete() error = %v", err)
	}
	if reply != "local reply" {
		t.Errorf("reply = %q", reply)
	}
	if gotReq.Model != "llama3.1" {
		t.Errorf("model = %q", gotReq.Model)
	}
	if gotReq.Stream == nil || *gotReq.Stream {
		t.Error("request must disable streaming")
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
}

func TestOllamaCompleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	p, err := NewOllamaProvider(srv.URL, Config{})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}
	srv.Close()

	_, err = p.Complete(context.Background(), "llama3.1", testutil.SingleUserMessage("hi"))
	var cerr *CompletionError
	if !errors.As(err, &cerr) {
		t.Fatalf("error %v is not a CompletionError", err)
	}
}

func TestOllamaPingNamesServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"models":[]}`))
	}))
	p, err := NewOllamaProvider(srv.URL, Config{})
	if err != nil {
		t.Fatalf("NewOllamaProvider: %v", err)
	}

	if err := p.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}

	srv.Close()
	err = p.Ping(context.Background())
	if err == nil || !strings.Contains(err.Error(), srv.URL) {
		t.Errorf("Ping() error = %v, want it to name %s", err, srv.URL)
	}
}

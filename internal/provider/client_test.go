package provider_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/triage-labs/quorum/internal/provider"
)

func testRequest() provider.Request {
	return provider.Request{
		Model: "gpt-4.1-mini",
		Messages: []provider.Message{
			{Role: "system", Content: "You classify documents."},
			{Role: "user", Content: "Classify this."},
		},
		Temperature: 0.2,
	}
}

func completion(content string) map[string]any {
	return map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": content}},
		},
	}
}

func TestInvoke(t *testing.T) {
	var got struct {
		Model          string             `json:"model"`
		Messages       []provider.Message `json:"messages"`
		ResponseFormat map[string]string  `json:"response_format"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q, want /chat/completions", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(completion(`{"label":"PUBLIC"}`))
	}))
	defer server.Close()

	client := provider.NewHTTPClient(server.URL, "test-key", time.Second)

	content, err := client.Invoke(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if content != `{"label":"PUBLIC"}` {
		t.Errorf("content = %q", content)
	}
	if got.Model != "gpt-4.1-mini" {
		t.Errorf("model = %q", got.Model)
	}
	if len(got.Messages) != 2 {
		t.Errorf("messages = %d, want 2", len(got.Messages))
	}
	if got.ResponseFormat["type"] != "json_object" {
		t.Errorf("response_format = %v, want json_object", got.ResponseFormat)
	}
}

func TestInvokeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid api key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := provider.NewHTTPClient(server.URL, "bad-key", time.Second)

	_, err := client.Invoke(context.Background(), testRequest())
	if !errors.Is(err, provider.ErrUnreachable) {
		t.Fatalf("error = %v, want ErrUnreachable", err)
	}
}

func TestInvokeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := provider.NewHTTPClient(server.URL, "test-key", 20*time.Millisecond)

	_, err := client.Invoke(context.Background(), testRequest())
	if !errors.Is(err, provider.ErrTimeout) {
		t.Fatalf("error = %v, want ErrTimeout", err)
	}
}

func TestInvokeCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	client := provider.NewHTTPClient(server.URL, "test-key", time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := client.Invoke(ctx, testRequest())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, provider.ErrUnreachable) {
		t.Error("cancellation must not map to ErrUnreachable")
	}
}

func TestInvokeConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := provider.NewHTTPClient(server.URL, "test-key", time.Second)

	_, err := client.Invoke(context.Background(), testRequest())
	if !errors.Is(err, provider.ErrUnreachable) {
		t.Fatalf("error = %v, want ErrUnreachable", err)
	}
}

func TestInvokeEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer server.Close()

	client := provider.NewHTTPClient(server.URL, "test-key", time.Second)

	_, err := client.Invoke(context.Background(), testRequest())
	if !errors.Is(err, provider.ErrUnreachable) {
		t.Fatalf("error = %v, want ErrUnreachable", err)
	}
}

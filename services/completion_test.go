package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "edubot/errors"
)

type capturedChatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const successCompletionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1,
	"model": "llama-3.3-70b-versatile",
	"choices": [
		{"index": 0, "message": {"role": "assistant", "content": "Light becomes chemical energy."}, "finish_reason": "stop"},
		{"index": 1, "message": {"role": "assistant", "content": "second candidate"}, "finish_reason": "stop"}
	]
}`

func newProviderWithServer(t *testing.T, handler http.HandlerFunc, timeout time.Duration) (*GroqProvider, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	provider := NewGroqProvider(GroqProviderOptions{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Model:   "llama-3.3-70b-versatile",
		Timeout: timeout,
	})
	return provider, server
}

func TestGroqProviderSendsSystemPromptAndUserMessage(t *testing.T) {
	var got capturedChatRequest
	var gotPath string

	provider, _ := newProviderWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, successCompletionBody)
	}, 5*time.Second)

	// Không trim, không sửa input của user trước khi gửi đi
	input := "  Chlorophyll là gì? 🌱 "
	reply, err := provider.Complete(context.Background(), input)
	if err != nil {
		t.Fatalf("Complete failed: %v", err)
	}

	// Lấy đúng candidate đầu tiên
	if reply != "Light becomes chemical energy." {
		t.Fatalf("expected first choice content, got %q", reply)
	}
	if gotPath != "/chat/completions" {
		t.Fatalf("unexpected request path: %q", gotPath)
	}
	if got.Model != "llama-3.3-70b-versatile" {
		t.Fatalf("unexpected model: %q", got.Model)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("expected system + user turn, got %d messages", len(got.Messages))
	}
	if got.Messages[0].Role != "system" || got.Messages[0].Content != systemPrompt {
		t.Fatalf("system turn not the fixed prompt: %+v", got.Messages[0])
	}
	if got.Messages[1].Role != "user" || got.Messages[1].Content != input {
		t.Fatalf("user turn not sent verbatim: %+v", got.Messages[1])
	}
}

func TestGroqProviderEmptyChoicesIsFailure(t *testing.T) {
	provider, _ := newProviderWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "m", "choices": []}`)
	}, 5*time.Second)

	_, err := provider.Complete(context.Background(), "hello")
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeEmptyCompletion {
		t.Fatalf("expected EMPTY_COMPLETION, got %v", err)
	}
}

func TestGroqProviderUpstreamErrorIsFailure(t *testing.T) {
	provider, _ := newProviderWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error": {"message": "upstream down", "type": "server_error"}}`)
	}, 5*time.Second)

	_, err := provider.Complete(context.Background(), "hello")
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeProvider {
		t.Fatalf("expected PROVIDER_ERROR, got %v", err)
	}
}

func TestGroqProviderTimeout(t *testing.T) {
	provider, _ := newProviderWithServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, successCompletionBody)
	}, 50*time.Millisecond)

	start := time.Now()
	_, err := provider.Complete(context.Background(), "hello")
	appErr := apperrors.GetAppError(err)
	if appErr == nil || appErr.Code != apperrors.ErrCodeProvider {
		t.Fatalf("expected PROVIDER_ERROR on timeout, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 400*time.Millisecond {
		t.Fatalf("call did not respect timeout, took %v", elapsed)
	}
}

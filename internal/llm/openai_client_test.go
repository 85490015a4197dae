package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blaisecz/step-tracker/internal/domain"
	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completion(content string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1710000000,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": "stop",
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewOpenAIClient("test-key", "", "", option.WithBaseURL(srv.URL+"/"), option.WithMaxRetries(0))
}

func TestNewOpenAIClient_NoKey(t *testing.T) {
	assert.Nil(t, NewOpenAIClient("", "gpt-4o-mini", ""))
}

func TestGenerateAdvice_NilClient(t *testing.T) {
	var c *OpenAIClient
	_, err := c.GenerateAdvice(context.Background(), &domain.AdviceContext{})
	assert.ErrorIs(t, err, ErrOpenAIUnavailable)
}

func TestGenerateAdvice(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(completion(`{"summary":"Good week.","observations":["Up 25%"],"suggestions":["Walk after lunch"]}`))
	})

	out, err := client.GenerateAdvice(context.Background(), &domain.AdviceContext{DailyGoal: 8000, AsOf: "2024-03-10"})
	require.NoError(t, err)
	assert.Equal(t, "Good week.", out.Summary)
	assert.Equal(t, []string{"Up 25%"}, out.Observations)
	assert.Equal(t, []string{"Walk after lunch"}, out.Suggestions)

	assert.Equal(t, "gpt-4o-mini", body["model"])
	assert.Equal(t, map[string]any{"type": "json_object"}, body["response_format"])
	messages, ok := body["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	system := messages[0].(map[string]any)
	assert.Equal(t, "system", system["role"])
	assert.Equal(t, DefaultSystemPrompt, system["content"])
	user := messages[1].(map[string]any)
	assert.Contains(t, user["content"], `"daily_goal": 8000`)
}

func TestGenerateAdvice_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{
			name:    "api error",
			status:  http.StatusBadRequest,
			body:    map[string]any{"error": map[string]any{"message": "bad model", "type": "invalid_request_error"}},
			wantErr: ErrOpenAIRequest,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    map[string]any{"id": "x", "object": "chat.completion", "choices": []any{}},
			wantErr: ErrOpenAIResponse,
		},
		{
			name:    "content is not JSON",
			status:  http.StatusOK,
			body:    completion("Walk more."),
			wantErr: ErrOpenAIResponse,
		},
		{
			name:    "empty summary",
			status:  http.StatusOK,
			body:    completion(`{"summary":"","observations":[],"suggestions":[]}`),
			wantErr: ErrOpenAIResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(tt.body)
			})

			_, err := client.GenerateAdvice(context.Background(), &domain.AdviceContext{})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

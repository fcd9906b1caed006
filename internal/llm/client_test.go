package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *AnthropicClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewAnthropicClient(AnthropicConfig{
		APIKey:  "sk-test",
		Model:   "claude-test",
		Options: []option.RequestOption{option.WithBaseURL(srv.URL)},
	}, nil)
	require.NoError(t, err)
	return c
}

func TestNewAnthropicClientRequiresKey(t *testing.T) {
	_, err := NewAnthropicClient(AnthropicConfig{Model: "claude-test"}, nil)
	assert.Error(t, err)

	_, err = NewAnthropicClient(AnthropicConfig{APIKey: "sk"}, nil)
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	var gotBody map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("X-Api-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "msg_1",
			"type": "message",
			"role": "assistant",
			"model": "claude-test",
			"content": [
				{"type": "text", "text": "{\"project_name\": "},
				{"type": "text", "text": "\"X\", \"tasks\": []}"}
			],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 12, "output_tokens": 9}
		}`))
	})

	out, err := c.Complete(context.Background(), "plan this")
	require.NoError(t, err)
	assert.Equal(t, `{"project_name": "X", "tasks": []}`, out)

	assert.Equal(t, "claude-test", gotBody["model"])
	assert.EqualValues(t, 4096, gotBody["max_tokens"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 1)
}

func TestCompleteDoesNotRetry(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
	})

	_, err := c.Complete(context.Background(), "plan this")
	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestListModels(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "claude-a", "display_name": "Claude A", "created_at": "2025-02-01T00:00:00Z", "type": "model"},
				{"id": "claude-b", "display_name": "Claude B", "created_at": "2025-01-01T00:00:00Z", "type": "model"}
			],
			"has_more": false,
			"first_id": "claude-a",
			"last_id": "claude-b"
		}`))
	})

	models, err := c.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, models, 2)
	assert.Equal(t, "claude-a", models[0].ID)
	assert.Equal(t, "Claude B", models[1].DisplayName)
	assert.Equal(t, 2025, models[0].CreatedAt.Year())
}

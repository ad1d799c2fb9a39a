package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, status int, reply string, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
			return
		}
		payload := map[string]interface{}{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]interface{}{
				{"index": 0, "message": map[string]string{"role": "assistant", "content": reply}, "finish_reason": "stop"},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenAIGeneratorReturnsContent(t *testing.T) {
	var captured map[string]interface{}
	server := newOpenAITestServer(t, http.StatusOK, "  generated plan  ", &captured)

	generator, err := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1/", Logger: zerolog.Nop()})
	require.NoError(t, err)

	text, err := generator.Generate(context.Background(), GenerationInput{System: "You are a tutor.", Prompt: "Explain fractions"})
	require.NoError(t, err)
	require.Equal(t, "generated plan", text)

	messages, ok := captured["messages"].([]interface{})
	require.True(t, ok)
	require.Len(t, messages, 2)
	require.Equal(t, "system", messages[0].(map[string]interface{})["role"])
	require.Equal(t, "Explain fractions", messages[1].(map[string]interface{})["content"])
	require.Equal(t, "gpt-4o-mini", captured["model"])
}

func TestOpenAIGeneratorOmitsEmptySystemMessage(t *testing.T) {
	var captured map[string]interface{}
	server := newOpenAITestServer(t, http.StatusOK, "ok", &captured)

	generator, err := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1", Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), GenerationInput{Prompt: "hello"})
	require.NoError(t, err)

	messages := captured["messages"].([]interface{})
	require.Len(t, messages, 1)
}

func TestOpenAIGeneratorWrapsUpstreamFailure(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusTooManyRequests, "", nil)

	generator, err := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1", Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), GenerationInput{Prompt: "hello"})
	require.Error(t, err)
	require.True(t, IsGenerationError(err))
	require.Contains(t, err.Error(), "quota exceeded")
}

func TestOpenAIGeneratorRejectsEmptyContent(t *testing.T) {
	server := newOpenAITestServer(t, http.StatusOK, "   ", nil)

	generator, err := NewOpenAIGenerator(OpenAIConfig{APIKey: "test", BaseURL: server.URL + "/v1", Logger: zerolog.Nop()})
	require.NoError(t, err)

	_, err = generator.Generate(context.Background(), GenerationInput{Prompt: "hello"})
	require.ErrorIs(t, err, ErrEmptyResponse)
}

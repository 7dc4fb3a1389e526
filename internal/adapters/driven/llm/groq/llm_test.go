package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

func newTestService(t *testing.T, handler http.HandlerFunc) *LLMService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewLLMService(Config{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})
	require.NoError(t, err)
	return svc
}

func TestNewLLMServiceRequiresAPIKey(t *testing.T) {
	_, err := NewLLMService(Config{})
	assert.Error(t, err)
}

func TestNewLLMServiceDefaults(t *testing.T) {
	svc, err := NewLLMService(Config{APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, svc.ModelName())
}

func TestGenerate(t *testing.T) {
	var gotReq chatCompletionRequest
	var gotAuth string

	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "generated text"}, "finish_reason": "stop"},
			},
		})
	})

	out, err := svc.Generate(context.Background(), "the prompt", driven.GenerateOptions{Temperature: 0})
	require.NoError(t, err)

	assert.Equal(t, "generated text", out)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, DefaultModel, gotReq.Model)
	require.Len(t, gotReq.Messages, 1)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "the prompt", gotReq.Messages[0].Content)
	assert.Zero(t, gotReq.Temperature)
}

func TestGenerateSendsExplicitZeroTemperature(t *testing.T) {
	var raw map[string]any
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "x"}}},
		})
	})

	_, err := svc.Generate(context.Background(), "p", driven.GenerateOptions{Temperature: 0})
	require.NoError(t, err)

	// Temperature 0 must reach the wire; omitting it would let the
	// provider pick its own default.
	_, present := raw["temperature"]
	assert.True(t, present)
}

func TestGenerateAPIError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "invalid api key", "type": "auth"},
		})
	})

	_, err := svc.Generate(context.Background(), "p", driven.GenerateOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestGenerateNoChoices(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := svc.Generate(context.Background(), "p", driven.GenerateOptions{})
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, svc.Ping(context.Background()))
}

func TestPingFailure(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	assert.Error(t, svc.Ping(context.Background()))
}

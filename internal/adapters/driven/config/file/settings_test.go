package file

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

func newSettingsStore(t *testing.T) *ConfigStore {
	t.Helper()
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "")
	t.Setenv(EnvGroqAPIKey, "")

	settings := LoadSettings(newSettingsStore(t))

	assert.Equal(t, domain.AIProviderGemini, settings.Embedding.Provider)
	assert.Equal(t, domain.AIProviderGroq, settings.LLM.Provider)
	assert.Equal(t, 1000, settings.Pipeline.ChunkSize)
	assert.Equal(t, 3, settings.Pipeline.MatchK)
	assert.Equal(t, 1, settings.Pipeline.ExtractRetries)
	assert.Equal(t, domain.ToneFormal, settings.Pipeline.Tone)
}

func TestLoadSettingsFromFile(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "")
	t.Setenv(EnvGroqAPIKey, "")

	store := newSettingsStore(t)
	require.NoError(t, store.Set(KeyEmbeddingProvider, "ollama"))
	require.NoError(t, store.Set(KeyEmbeddingBaseURL, "http://localhost:11434"))
	require.NoError(t, store.Set(KeyLLMProvider, "gemini"))
	require.NoError(t, store.Set(KeyLLMAPIKey, "file-key"))
	require.NoError(t, store.Set(KeyLLMTimeout, 60))
	require.NoError(t, store.Set(KeyChunkSize, 400))
	require.NoError(t, store.Set(KeyTone, "casual"))

	settings := LoadSettings(store)

	assert.Equal(t, domain.AIProviderOllama, settings.Embedding.Provider)
	assert.Equal(t, "http://localhost:11434", settings.Embedding.BaseURL)
	assert.Equal(t, domain.AIProviderGemini, settings.LLM.Provider)
	assert.Equal(t, "file-key", settings.LLM.APIKey)
	assert.Equal(t, 60*time.Second, settings.LLM.Timeout)
	assert.Equal(t, 400, settings.Pipeline.ChunkSize)
	assert.Equal(t, domain.ToneCasual, settings.Pipeline.Tone)
}

func TestLoadSettingsEnvOverridesFile(t *testing.T) {
	store := newSettingsStore(t)
	require.NoError(t, store.Set(KeyEmbeddingAPIKey, "file-gemini-key"))
	require.NoError(t, store.Set(KeyLLMAPIKey, "file-groq-key"))

	t.Setenv(EnvGeminiAPIKey, "env-gemini-key")
	t.Setenv(EnvGroqAPIKey, "env-groq-key")

	settings := LoadSettings(store)

	assert.Equal(t, "env-gemini-key", settings.Embedding.APIKey)
	assert.Equal(t, "env-groq-key", settings.LLM.APIKey)
}

func TestLoadSettingsEnvOnlyAppliesToMatchingProvider(t *testing.T) {
	store := newSettingsStore(t)
	require.NoError(t, store.Set(KeyLLMProvider, "gemini"))

	t.Setenv(EnvGeminiAPIKey, "gemini-key")
	t.Setenv(EnvGroqAPIKey, "groq-key")

	settings := LoadSettings(store)

	// Both embedding and LLM run on Gemini here, so the Groq key is
	// never used.
	assert.Equal(t, "gemini-key", settings.Embedding.APIKey)
	assert.Equal(t, "gemini-key", settings.LLM.APIKey)
}

func TestLoadSettingsIgnoresInvalidTone(t *testing.T) {
	t.Setenv(EnvGeminiAPIKey, "")
	t.Setenv(EnvGroqAPIKey, "")

	store := newSettingsStore(t)
	require.NoError(t, store.Set(KeyTone, "sarcastic"))

	settings := LoadSettings(store)
	assert.Equal(t, domain.ToneFormal, settings.Pipeline.Tone)
}

package file

import (
	"os"
	"time"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Configuration keys recognised in config.toml.
const (
	KeyDataDir   = "data_dir"
	KeyOutputDir = "output_dir"

	KeyEmbeddingProvider = "embedding_provider"
	KeyEmbeddingModel    = "embedding_model"
	KeyEmbeddingBaseURL  = "embedding_base_url"
	KeyEmbeddingAPIKey   = "embedding_api_key"
	KeyEmbeddingTimeout  = "embedding_timeout_seconds"

	KeyLLMProvider = "llm_provider"
	KeyLLMModel    = "llm_model"
	KeyLLMBaseURL  = "llm_base_url"
	KeyLLMAPIKey   = "llm_api_key"
	KeyLLMTimeout  = "llm_timeout_seconds"

	KeyChunkSize      = "chunk_size"
	KeyMatchK         = "match_k"
	KeyExtractRetries = "extract_retries"
	KeyTone           = "tone"
)

// Environment variables that override config-file API keys, so
// credentials can stay out of the config file entirely.
const (
	EnvGeminiAPIKey = "GEMINI_API_KEY"
	EnvGroqAPIKey   = "GROQ_API_KEY"
)

// LoadSettings builds typed application settings from the config store,
// starting from defaults and applying file values then env overrides.
func LoadSettings(store driven.ConfigStore) domain.AppSettings {
	settings := domain.DefaultAppSettings()

	if v := store.GetString(KeyDataDir); v != "" {
		settings.DataDir = v
	}
	if v := store.GetString(KeyOutputDir); v != "" {
		settings.OutputDir = v
	}

	if v := store.GetString(KeyEmbeddingProvider); v != "" {
		settings.Embedding.Provider = domain.AIProvider(v)
	}
	settings.Embedding.Model = store.GetString(KeyEmbeddingModel)
	settings.Embedding.BaseURL = store.GetString(KeyEmbeddingBaseURL)
	if v := store.GetString(KeyEmbeddingAPIKey); v != "" {
		settings.Embedding.APIKey = v
	}
	if v := store.GetInt(KeyEmbeddingTimeout); v > 0 {
		settings.Embedding.Timeout = time.Duration(v) * time.Second
	}

	if v := store.GetString(KeyLLMProvider); v != "" {
		settings.LLM.Provider = domain.AIProvider(v)
	}
	settings.LLM.Model = store.GetString(KeyLLMModel)
	settings.LLM.BaseURL = store.GetString(KeyLLMBaseURL)
	if v := store.GetString(KeyLLMAPIKey); v != "" {
		settings.LLM.APIKey = v
	}
	if v := store.GetInt(KeyLLMTimeout); v > 0 {
		settings.LLM.Timeout = time.Duration(v) * time.Second
	}

	if v := store.GetInt(KeyChunkSize); v > 0 {
		settings.Pipeline.ChunkSize = v
	}
	if v := store.GetInt(KeyMatchK); v > 0 {
		settings.Pipeline.MatchK = v
	}
	if v := store.GetInt(KeyExtractRetries); v > 0 {
		settings.Pipeline.ExtractRetries = v
	}
	if tone, err := domain.ParseTone(store.GetString(KeyTone)); err == nil {
		settings.Pipeline.Tone = tone
	}

	applyEnvOverrides(&settings)
	return settings
}

// applyEnvOverrides lets environment credentials win over file values.
func applyEnvOverrides(settings *domain.AppSettings) {
	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		if settings.Embedding.Provider == domain.AIProviderGemini {
			settings.Embedding.APIKey = key
		}
		if settings.LLM.Provider == domain.AIProviderGemini {
			settings.LLM.APIKey = key
		}
	}
	if key := os.Getenv(EnvGroqAPIKey); key != "" {
		if settings.LLM.Provider == domain.AIProviderGroq {
			settings.LLM.APIKey = key
		}
	}
}

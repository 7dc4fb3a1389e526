package domain

import "time"

const unknownDescription = "Unknown"

// AIProvider identifies an AI service provider for embeddings or text
// generation.
type AIProvider string

// Available AI providers.
const (
	// AIProviderGemini is the Google Gemini cloud API.
	AIProviderGemini AIProvider = "gemini"

	// AIProviderGroq is the Groq cloud API (OpenAI-compatible).
	AIProviderGroq AIProvider = "groq"

	// AIProviderOllama is a local Ollama instance.
	AIProviderOllama AIProvider = "ollama"
)

// IsValid returns true if the AI provider is recognised.
func (p AIProvider) IsValid() bool {
	switch p {
	case AIProviderGemini, AIProviderGroq, AIProviderOllama:
		return true
	default:
		return false
	}
}

// RequiresAPIKey returns true if this provider needs an API key.
func (p AIProvider) RequiresAPIKey() bool {
	return p == AIProviderGemini || p == AIProviderGroq
}

// String returns the string representation.
func (p AIProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AIProvider) Description() string {
	switch p {
	case AIProviderGemini:
		return "Google Gemini (cloud)"
	case AIProviderGroq:
		return "Groq (cloud)"
	case AIProviderOllama:
		return "Ollama (local)"
	default:
		return unknownDescription
	}
}

// EmbeddingSettings holds embedding provider configuration.
type EmbeddingSettings struct {
	// Provider is the embedding service provider (gemini or ollama).
	Provider AIProvider

	// Model is the embedding model name.
	Model string

	// BaseURL is the API endpoint (for Ollama).
	BaseURL string

	// APIKey is the API key (for Gemini).
	APIKey string

	// Timeout bounds a single embedding call.
	Timeout time.Duration
}

// Validate checks the embedding configuration is usable.
func (e EmbeddingSettings) Validate() error {
	if !e.Provider.IsValid() {
		return ErrMissingConfig
	}
	if e.Provider.RequiresAPIKey() && e.APIKey == "" {
		return ErrMissingConfig
	}
	return nil
}

// LLMSettings holds generative model configuration.
type LLMSettings struct {
	// Provider is the LLM service provider (gemini or groq).
	Provider AIProvider

	// Model is the LLM model name.
	Model string

	// BaseURL is the API endpoint (for Groq-compatible gateways).
	BaseURL string

	// APIKey is the API key.
	APIKey string

	// Timeout bounds a single generation call.
	Timeout time.Duration
}

// Validate checks the LLM configuration is usable.
func (l LLMSettings) Validate() error {
	if !l.Provider.IsValid() {
		return ErrMissingConfig
	}
	if l.Provider.RequiresAPIKey() && l.APIKey == "" {
		return ErrMissingConfig
	}
	return nil
}

// PipelineSettings holds knobs for the generate pipeline.
type PipelineSettings struct {
	// ChunkSize is the resume chunk size in characters.
	ChunkSize int

	// MatchK is how many resume chunks a skill match retrieves.
	MatchK int

	// ExtractRetries is how many times a failed extraction is re-run.
	// The extractor itself makes exactly one model call per run.
	ExtractRetries int

	// Tone is the default writing tone for drafts.
	Tone Tone
}

// AppSettings holds all application settings.
type AppSettings struct {
	// DataDir is where the vector store lives.
	DataDir string

	// OutputDir is where generated artifacts are written.
	OutputDir string

	// Embedding holds embedding provider settings.
	Embedding EmbeddingSettings

	// LLM holds generative model settings.
	LLM LLMSettings

	// Pipeline holds generate pipeline settings.
	Pipeline PipelineSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Cloud providers are left unconfigured; API keys come from config or
// environment.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		OutputDir: ".",
		Embedding: EmbeddingSettings{
			Provider: AIProviderGemini,
			Timeout:  30 * time.Second,
		},
		LLM: LLMSettings{
			Provider: AIProviderGroq,
			Timeout:  120 * time.Second,
		},
		Pipeline: PipelineSettings{
			ChunkSize:      1000,
			MatchK:         3,
			ExtractRetries: 1,
			Tone:           ToneFormal,
		},
	}
}

// Validate fails fast when required credentials or settings are absent,
// before any pipeline step runs.
func (s AppSettings) Validate() error {
	if err := s.Embedding.Validate(); err != nil {
		return err
	}
	if err := s.LLM.Validate(); err != nil {
		return err
	}
	if s.Pipeline.ChunkSize <= 0 {
		return ErrMissingConfig
	}
	return nil
}

// Package ai provides factory functions for creating AI service adapters.
package ai

import (
	"context"
	"fmt"

	geminiembed "github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/embedding/gemini"
	ollamaembed "github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/embedding/ollama"
	geminillm "github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/llm/gemini"
	groqllm "github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/llm/groq"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Providers bundles the AI services the pipeline depends on.
type Providers struct {
	Embedding driven.EmbeddingService
	LLM       driven.LLMService
}

// Close releases all resources held by the providers.
func (p *Providers) Close() {
	if p.Embedding != nil {
		p.Embedding.Close()
	}
	if p.LLM != nil {
		p.LLM.Close()
	}
}

// CreateProviders builds the embedding and LLM services from settings
// and wraps both in rate-limiting decorators. Construction failures are
// mapped into the availability taxonomy so callers can fail fast before
// any pipeline step runs.
func CreateProviders(ctx context.Context, settings domain.AppSettings) (*Providers, error) {
	embedding, err := CreateEmbeddingService(ctx, settings.Embedding)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEmbeddingUnavailable, err)
	}

	llm, err := CreateLLMService(ctx, settings.LLM)
	if err != nil {
		embedding.Close()
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}

	return &Providers{
		Embedding: RateLimitEmbedding(embedding, DefaultEmbeddingRate),
		LLM:       RateLimitLLM(llm, DefaultLLMRate),
	}, nil
}

// CreateEmbeddingService creates the appropriate embedding service based
// on settings.
func CreateEmbeddingService(ctx context.Context, settings domain.EmbeddingSettings) (driven.EmbeddingService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case domain.AIProviderGemini:
		return geminiembed.NewEmbeddingService(ctx, geminiembed.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOllama:
		return ollamaembed.NewEmbeddingService(ollamaembed.Config{
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: settings.Timeout,
		}), nil

	case domain.AIProviderGroq:
		// Groq serves chat models only.
		return nil, fmt.Errorf("groq does not serve embeddings, use gemini or ollama")

	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", settings.Provider)
	}
}

// CreateLLMService creates the appropriate LLM service based on settings.
func CreateLLMService(ctx context.Context, settings domain.LLMSettings) (driven.LLMService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Provider {
	case domain.AIProviderGroq:
		return groqllm.NewLLMService(groqllm.Config{
			APIKey:  settings.APIKey,
			BaseURL: settings.BaseURL,
			Model:   settings.Model,
			Timeout: settings.Timeout,
		})

	case domain.AIProviderGemini:
		return geminillm.NewLLMService(ctx, geminillm.Config{
			APIKey: settings.APIKey,
			Model:  settings.Model,
		})

	case domain.AIProviderOllama:
		return nil, fmt.Errorf("ollama text generation is not wired, use groq or gemini")

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", settings.Provider)
	}
}

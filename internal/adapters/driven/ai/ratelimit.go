package ai

import (
	"context"

	"golang.org/x/time/rate"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// Proactive throttle rates, in requests per second. Free-tier model APIs
// meter per minute; staying under these keeps a resume ingestion batch
// inside the quota without reactive header parsing.
const (
	DefaultEmbeddingRate rate.Limit = 5
	DefaultLLMRate       rate.Limit = 1
)

// rateLimitedEmbedding throttles calls to a wrapped embedding service.
type rateLimitedEmbedding struct {
	driven.EmbeddingService
	limiter *rate.Limiter
}

// RateLimitEmbedding wraps an embedding service with a token-bucket
// limiter. Batch calls take a single token since providers meter the
// request, not its size.
func RateLimitEmbedding(svc driven.EmbeddingService, limit rate.Limit) driven.EmbeddingService {
	return &rateLimitedEmbedding{
		EmbeddingService: svc,
		limiter:          rate.NewLimiter(limit, 1),
	}
}

func (s *rateLimitedEmbedding) Embed(ctx context.Context, text string) ([]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.EmbeddingService.Embed(ctx, text)
}

func (s *rateLimitedEmbedding) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return s.EmbeddingService.EmbedBatch(ctx, texts)
}

// rateLimitedLLM throttles calls to a wrapped LLM service.
type rateLimitedLLM struct {
	driven.LLMService
	limiter *rate.Limiter
}

// RateLimitLLM wraps an LLM service with a token-bucket limiter.
func RateLimitLLM(svc driven.LLMService, limit rate.Limit) driven.LLMService {
	return &rateLimitedLLM{
		LLMService: svc,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func (s *rateLimitedLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return s.LLMService.Generate(ctx, prompt, opts)
}

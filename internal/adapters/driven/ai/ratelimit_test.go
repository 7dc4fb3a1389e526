package ai

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

type countingEmbedding struct {
	calls int
}

func (c *countingEmbedding) Embed(_ context.Context, _ string) ([]float32, error) {
	c.calls++
	return []float32{1}, nil
}

func (c *countingEmbedding) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	c.calls++
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = []float32{1}
	}
	return out, nil
}

func (c *countingEmbedding) Dimensions() int              { return 1 }
func (c *countingEmbedding) ModelName() string            { return "counting" }
func (c *countingEmbedding) Ping(_ context.Context) error { return nil }
func (c *countingEmbedding) Close() error                 { return nil }

type countingLLM struct {
	calls int
}

func (c *countingLLM) Generate(_ context.Context, _ string, _ driven.GenerateOptions) (string, error) {
	c.calls++
	return "out", nil
}

func (c *countingLLM) ModelName() string            { return "counting" }
func (c *countingLLM) Ping(_ context.Context) error { return nil }
func (c *countingLLM) Close() error                 { return nil }

func TestRateLimitEmbeddingPassesThrough(t *testing.T) {
	inner := &countingEmbedding{}
	limited := RateLimitEmbedding(inner, 100)

	_, err := limited.Embed(context.Background(), "text")
	require.NoError(t, err)

	_, err = limited.EmbedBatch(context.Background(), []string{"a", "b"})
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, 1, limited.Dimensions(), "non-throttled methods are delegated")
	assert.Equal(t, "counting", limited.ModelName())
}

func TestRateLimitEmbeddingThrottles(t *testing.T) {
	inner := &countingEmbedding{}
	limited := RateLimitEmbedding(inner, 20)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := limited.Embed(context.Background(), "text")
		require.NoError(t, err)
	}

	// Burst of 1 at 20 req/s: the second and third calls wait ~50ms each.
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.Equal(t, 3, inner.calls)
}

func TestRateLimitEmbeddingHonoursCancellation(t *testing.T) {
	inner := &countingEmbedding{}
	limited := RateLimitEmbedding(inner, 0.001)

	// Exhaust the burst token.
	_, err := limited.Embed(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = limited.Embed(ctx, "second")
	assert.Error(t, err)
	assert.Equal(t, 1, inner.calls, "cancelled wait never reaches the provider")
}

func TestRateLimitLLMPassesThrough(t *testing.T) {
	inner := &countingLLM{}
	limited := RateLimitLLM(inner, 100)

	out, err := limited.Generate(context.Background(), "p", driven.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, "out", out)
	assert.Equal(t, 1, inner.calls)
	assert.NoError(t, limited.Ping(context.Background()))
}

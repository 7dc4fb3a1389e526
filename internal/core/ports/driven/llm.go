package driven

import "context"

// LLMService is the generative model consumed by extraction and
// drafting. It has no schema awareness; callers parse the raw text.
//
// Implementations may include:
//   - Groq (llama, compound models; OpenAI wire format)
//   - Gemini
type LLMService interface {
	// Generate produces a text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic).
	// Extraction runs at 0 so repeated runs stay comparable.
	Temperature float64
}

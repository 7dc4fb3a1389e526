// Package services contains the application's core business logic,
// orchestrating the driven ports without knowing their implementations.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
	"github.com/coldconnect-labs/coldconnect-cli/internal/logger"
)

// requiredJobKeys are the keys every extracted posting must carry.
var requiredJobKeys = []string{"role", "experience", "skills", "description"}

// Extractor turns cleaned career-page text into structured job postings
// using the generative model. It makes exactly one model call per run;
// re-running on malformed output is the caller's decision.
type Extractor struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewExtractor creates an extractor backed by the given model and
// prompt store.
func NewExtractor(llm driven.LLMService, prompts driven.PromptStore) *Extractor {
	return &Extractor{llm: llm, prompts: prompts}
}

// Extract prompts the model with the cleaned page text and parses the
// response into job postings. The result is always a slice, even when
// the model returns a single object. Malformed output is reported as an
// *domain.ExtractionError carrying the raw response.
func (e *Extractor) Extract(ctx context.Context, pageText string) ([]domain.JobPosting, error) {
	template, err := e.prompts.Load(driven.PromptExtractJobs)
	if err != nil {
		return nil, fmt.Errorf("loading extraction prompt: %w", err)
	}

	prompt := fmt.Sprintf(template, pageText)
	logger.Debug("extraction prompt: %d chars, model %s", len(prompt), e.llm.ModelName())

	raw, err := e.llm.Generate(ctx, prompt, driven.GenerateOptions{Temperature: 0})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}

	jobs, err := decodeJobs(raw)
	if err != nil {
		return nil, &domain.ExtractionError{Raw: raw, Err: err}
	}

	logger.Info("extracted %d job posting(s)", len(jobs))
	return jobs, nil
}

// decodeJobs parses a model response into postings. The response may be
// a single JSON object or an array of objects; both normalise to a
// slice. This is the only place the two shapes are distinguished.
func decodeJobs(raw string) ([]domain.JobPosting, error) {
	payload := strings.TrimSpace(stripCodeFence(raw))
	if payload == "" {
		return nil, fmt.Errorf("empty model response")
	}

	switch payload[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal([]byte(payload), &elems); err != nil {
			return nil, fmt.Errorf("invalid JSON array: %w", err)
		}
		jobs := make([]domain.JobPosting, 0, len(elems))
		for i, elem := range elems {
			job, err := decodeJob(elem)
			if err != nil {
				return nil, fmt.Errorf("posting %d: %w", i, err)
			}
			jobs = append(jobs, job)
		}
		if len(jobs) == 0 {
			return nil, fmt.Errorf("empty posting array")
		}
		return jobs, nil
	case '{':
		job, err := decodeJob(json.RawMessage(payload))
		if err != nil {
			return nil, err
		}
		return []domain.JobPosting{job}, nil
	default:
		return nil, fmt.Errorf("response is not JSON")
	}
}

// decodeJob validates that all required keys are present before
// unmarshalling, so a posting with a silently dropped field is rejected
// instead of surfacing as zero values downstream.
func decodeJob(data json.RawMessage) (domain.JobPosting, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return domain.JobPosting{}, fmt.Errorf("invalid JSON object: %w", err)
	}
	for _, key := range requiredJobKeys {
		if _, ok := fields[key]; !ok {
			return domain.JobPosting{}, fmt.Errorf("missing key %q", key)
		}
	}

	var job domain.JobPosting
	if err := json.Unmarshal(data, &job); err != nil {
		return domain.JobPosting{}, fmt.Errorf("decoding posting: %w", err)
	}
	return job, nil
}

// stripCodeFence removes a surrounding markdown code fence, which chat
// models often wrap JSON in despite instructions not to.
func stripCodeFence(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "```") {
		return s
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return trimmed
}

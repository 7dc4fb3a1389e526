package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
)

// fallbackHighlights stands in for resume highlights when matching
// produced nothing, so drafting still works for an empty store.
const fallbackHighlights = "Candidate resume not available."

// draftTemperature leaves the model some room for phrasing; extraction
// runs colder because its output is parsed, drafts are read by people.
const draftTemperature = 0.7

// Generator drafts outreach artifacts from an extracted posting and the
// candidate's matched resume highlights.
type Generator struct {
	llm     driven.LLMService
	prompts driven.PromptStore
}

// NewGenerator creates a generator backed by the given model and prompt
// store.
func NewGenerator(llm driven.LLMService, prompts driven.PromptStore) *Generator {
	return &Generator{llm: llm, prompts: prompts}
}

// ColdEmail drafts a cold email for the posting in the requested tone.
func (g *Generator) ColdEmail(ctx context.Context, job domain.JobPosting, highlights string, tone domain.Tone) (string, error) {
	return g.draft(ctx, driven.PromptColdEmail, job, highlights, tone)
}

// CoverLetter drafts a cover letter for the posting in the requested
// tone.
func (g *Generator) CoverLetter(ctx context.Context, job domain.JobPosting, highlights string, tone domain.Tone) (string, error) {
	return g.draft(ctx, driven.PromptCoverLetter, job, highlights, tone)
}

func (g *Generator) draft(ctx context.Context, promptName string, job domain.JobPosting, highlights string, tone domain.Tone) (string, error) {
	template, err := g.prompts.Load(promptName)
	if err != nil {
		return "", fmt.Errorf("loading %s prompt: %w", promptName, err)
	}

	jobJSON, err := json.Marshal(job)
	if err != nil {
		return "", fmt.Errorf("encoding posting: %w", err)
	}
	if highlights == "" {
		highlights = fallbackHighlights
	}

	prompt := fmt.Sprintf(template, string(jobJSON), highlights, tone)
	text, err := g.llm.Generate(ctx, prompt, driven.GenerateOptions{Temperature: draftTemperature})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLLMUnavailable, err)
	}
	return text, nil
}

package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

const validJobJSON = `{
	"role": "Senior Go Engineer",
	"experience": "5+ years",
	"skills": ["go", "sql", "kubernetes"],
	"description": "Build backend services."
}`

func TestExtractorSingleObject(t *testing.T) {
	llm := &mockLLM{responses: []string{validJobJSON}}
	extractor := NewExtractor(llm, &mockPrompts{})

	jobs, err := extractor.Extract(context.Background(), "cleaned page text")

	require.NoError(t, err)
	require.Len(t, jobs, 1, "a single object still yields a slice")
	assert.Equal(t, "Senior Go Engineer", jobs[0].Role)
	assert.Equal(t, "5+ years", jobs[0].Experience)
	assert.Equal(t, []string{"go", "sql", "kubernetes"}, jobs[0].Skills)
	assert.Equal(t, "Build backend services.", jobs[0].Description)
}

func TestExtractorArray(t *testing.T) {
	llm := &mockLLM{responses: []string{`[` + validJobJSON + `,
		{"role": "SRE", "experience": "3+ years", "skills": ["aws"], "description": "Keep it running."}]`}}
	extractor := NewExtractor(llm, &mockPrompts{})

	jobs, err := extractor.Extract(context.Background(), "page")

	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "Senior Go Engineer", jobs[0].Role)
	assert.Equal(t, "SRE", jobs[1].Role)
}

func TestExtractorFencedResponse(t *testing.T) {
	llm := &mockLLM{responses: []string{"```json\n[" + validJobJSON + "]\n```"}}
	extractor := NewExtractor(llm, &mockPrompts{})

	jobs, err := extractor.Extract(context.Background(), "page")

	require.NoError(t, err)
	assert.Len(t, jobs, 1)
}

func TestExtractorPromptAndOptions(t *testing.T) {
	llm := &mockLLM{responses: []string{validJobJSON}}
	extractor := NewExtractor(llm, &mockPrompts{})

	_, err := extractor.Extract(context.Background(), "cleaned page text")
	require.NoError(t, err)

	require.Len(t, llm.prompts, 1, "exactly one model call per run")
	assert.Equal(t, "extract: cleaned page text", llm.prompts[0])
	assert.Zero(t, llm.opts[0].Temperature, "extraction runs deterministic")
}

func TestExtractorInvalidResponses(t *testing.T) {
	tests := []struct {
		name     string
		response string
		wantIn   string
	}{
		{
			name:     "prose around JSON",
			response: "Here are the jobs: " + validJobJSON,
			wantIn:   "not JSON",
		},
		{
			name:     "truncated JSON",
			response: `{"role": "Engineer", "experience":`,
			wantIn:   "invalid JSON",
		},
		{
			name:     "missing key",
			response: `{"role": "Engineer", "experience": "2 years", "skills": ["go"]}`,
			wantIn:   `missing key "description"`,
		},
		{
			name:     "empty array",
			response: `[]`,
			wantIn:   "empty posting array",
		},
		{
			name:     "empty response",
			response: "   ",
			wantIn:   "empty model response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &mockLLM{responses: []string{tt.response}}
			_, err := NewExtractor(llm, &mockPrompts{}).Extract(context.Background(), "page")

			var extractionErr *domain.ExtractionError
			require.ErrorAs(t, err, &extractionErr)
			assert.Equal(t, tt.response, extractionErr.Raw, "raw response is preserved for diagnosis")
			assert.True(t, strings.Contains(err.Error(), tt.wantIn) || strings.Contains(extractionErr.Err.Error(), tt.wantIn),
				"error %q should mention %q", extractionErr.Err, tt.wantIn)
		})
	}
}

func TestExtractorLLMFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("503 service unavailable")}
	_, err := NewExtractor(llm, &mockPrompts{}).Extract(context.Background(), "page")

	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)

	var extractionErr *domain.ExtractionError
	assert.False(t, errors.As(err, &extractionErr), "provider outage is not an extraction error")
}

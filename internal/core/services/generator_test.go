package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

var testJob = domain.JobPosting{
	Role:        "Backend Engineer",
	Experience:  "3+ years",
	Skills:      []string{"go", "postgres"},
	Description: "APIs and data pipelines.",
}

func TestGeneratorColdEmail(t *testing.T) {
	llm := &mockLLM{responses: []string{"Dear Hiring Manager, ..."}}
	gen := NewGenerator(llm, &mockPrompts{})

	email, err := gen.ColdEmail(context.Background(), testJob, "built APIs in go", domain.ToneCasual)

	require.NoError(t, err)
	assert.Equal(t, "Dear Hiring Manager, ...", email)

	require.Len(t, llm.prompts, 1)
	prompt := llm.prompts[0]
	assert.Contains(t, prompt, "cold_email|")
	assert.Contains(t, prompt, `"role":"Backend Engineer"`, "job is passed as JSON")
	assert.Contains(t, prompt, "built APIs in go")
	assert.Contains(t, prompt, "casual")
}

func TestGeneratorCoverLetter(t *testing.T) {
	llm := &mockLLM{responses: []string{"A cover letter."}}
	gen := NewGenerator(llm, &mockPrompts{})

	letter, err := gen.CoverLetter(context.Background(), testJob, "highlights", domain.ToneEnthusiastic)

	require.NoError(t, err)
	assert.Equal(t, "A cover letter.", letter)
	assert.Contains(t, llm.prompts[0], "cover_letter|")
	assert.Contains(t, llm.prompts[0], "enthusiastic")
}

func TestGeneratorHighlightsFallback(t *testing.T) {
	llm := &mockLLM{responses: []string{"draft"}}
	gen := NewGenerator(llm, &mockPrompts{})

	_, err := gen.ColdEmail(context.Background(), testJob, "", domain.ToneFormal)

	require.NoError(t, err)
	assert.Contains(t, llm.prompts[0], fallbackHighlights, "empty highlights get a stand-in")
}

func TestGeneratorLLMFailure(t *testing.T) {
	llm := &mockLLM{err: errors.New("rate limited")}
	gen := NewGenerator(llm, &mockPrompts{})

	_, err := gen.ColdEmail(context.Background(), testJob, "h", domain.ToneFormal)
	assert.ErrorIs(t, err, domain.ErrLLMUnavailable)
}

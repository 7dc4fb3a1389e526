package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/ports/driven"
	"github.com/coldconnect-labs/coldconnect-cli/internal/logger"
	"github.com/coldconnect-labs/coldconnect-cli/internal/normalisers/webpage"
)

// Artifact file names written per posting. Postings after the first get
// a numeric suffix so nothing is overwritten.
const (
	emailFileName       = "cold_email.txt"
	coverLetterFileName = "cover_letter.txt"
)

// JobOutreach is the full result for one extracted posting.
type JobOutreach struct {
	Job             domain.JobPosting
	Skills          domain.SkillReport
	Email           string
	CoverLetter     string
	EmailPath       string
	CoverLetterPath string
}

// OutreachResult is the output of a full pipeline run.
type OutreachResult struct {
	Jobs []JobOutreach
}

// Application wires the pipeline stages together: fetch, extract,
// ingest, match, score, draft. Each provider call runs under the
// timeout configured for its provider.
type Application struct {
	settings  domain.AppSettings
	fetcher   driven.PageFetcher
	matcher   *Matcher
	extractor *Extractor
	generator *Generator
}

// NewApplication creates the application service from its stage
// services.
func NewApplication(settings domain.AppSettings, fetcher driven.PageFetcher, matcher *Matcher, extractor *Extractor, generator *Generator) *Application {
	return &Application{
		settings:  settings,
		fetcher:   fetcher,
		matcher:   matcher,
		extractor: extractor,
		generator: generator,
	}
}

// FetchAndExtract scrapes the posting page, cleans it and extracts
// structured postings. A run whose model output fails JSON validation is
// re-run up to the configured retry count; provider outages are not
// retried.
func (a *Application) FetchAndExtract(ctx context.Context, url string) ([]domain.JobPosting, error) {
	logger.Section("fetch")
	raw, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	cleaned := webpage.Clean(raw)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: page at %s has no extractable text", domain.ErrInvalidInput, url)
	}
	logger.Debug("cleaned page: %d chars", len(cleaned))

	logger.Section("extract")
	attempts := a.settings.Pipeline.ExtractRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		jobs, err := a.extract(ctx, cleaned)
		if err == nil {
			return jobs, nil
		}
		lastErr = err

		var extractionErr *domain.ExtractionError
		if !errors.As(err, &extractionErr) {
			return nil, err
		}
		if attempt < attempts {
			logger.Warn("extraction attempt %d produced invalid JSON, retrying", attempt)
		}
	}
	return nil, lastErr
}

func (a *Application) extract(ctx context.Context, cleaned string) ([]domain.JobPosting, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.settings.LLM.Timeout)
	defer cancel()
	return a.extractor.Extract(callCtx, cleaned)
}

// IngestResume loads the resume into the vector store under the
// embedding provider's timeout.
func (a *Application) IngestResume(ctx context.Context, path string) (int, error) {
	logger.Section("ingest")
	callCtx, cancel := context.WithTimeout(ctx, a.settings.Embedding.Timeout)
	defer cancel()
	return a.matcher.Ingest(callCtx, path)
}

// MatchSkills retrieves the resume chunks most relevant to the skill
// list.
func (a *Application) MatchSkills(ctx context.Context, skills []string) (domain.MatchResult, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.settings.Embedding.Timeout)
	defer cancel()
	return a.matcher.Match(callCtx, skills, a.settings.Pipeline.MatchK)
}

// ResetResume clears the stored resume.
func (a *Application) ResetResume(ctx context.Context) error {
	return a.matcher.Reset(ctx)
}

// GenerateOutreach runs the full pipeline: extract postings from the
// page, ingest the resume, then per posting match, score and draft. The
// artifacts are written under the configured output directory.
func (a *Application) GenerateOutreach(ctx context.Context, resumePath, url string, tone domain.Tone) (*OutreachResult, error) {
	jobs, err := a.FetchAndExtract(ctx, url)
	if err != nil {
		return nil, err
	}

	if _, err := a.IngestResume(ctx, resumePath); err != nil {
		return nil, err
	}

	result := &OutreachResult{Jobs: make([]JobOutreach, 0, len(jobs))}
	for i, job := range jobs {
		logger.Section(fmt.Sprintf("draft %d/%d", i+1, len(jobs)))

		match, err := a.MatchSkills(ctx, job.Skills)
		if err != nil {
			return nil, err
		}
		highlights := match.Summary()

		outreach := JobOutreach{
			Job:    job,
			Skills: ScoreSkills(job.Skills, highlights),
		}

		outreach.Email, err = a.draft(ctx, a.generator.ColdEmail, job, highlights, tone)
		if err != nil {
			return nil, fmt.Errorf("drafting email for %q: %w", job.Role, err)
		}
		outreach.CoverLetter, err = a.draft(ctx, a.generator.CoverLetter, job, highlights, tone)
		if err != nil {
			return nil, fmt.Errorf("drafting cover letter for %q: %w", job.Role, err)
		}

		outreach.EmailPath, err = a.writeArtifact(emailFileName, i, outreach.Email)
		if err != nil {
			return nil, err
		}
		outreach.CoverLetterPath, err = a.writeArtifact(coverLetterFileName, i, outreach.CoverLetter)
		if err != nil {
			return nil, err
		}

		result.Jobs = append(result.Jobs, outreach)
	}
	return result, nil
}

type draftFunc func(ctx context.Context, job domain.JobPosting, highlights string, tone domain.Tone) (string, error)

func (a *Application) draft(ctx context.Context, fn draftFunc, job domain.JobPosting, highlights string, tone domain.Tone) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.settings.LLM.Timeout)
	defer cancel()
	return fn(callCtx, job, highlights, tone)
}

// writeArtifact writes a draft to the output directory and returns its
// path.
func (a *Application) writeArtifact(name string, jobIndex int, content string) (string, error) {
	if err := os.MkdirAll(a.settings.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if jobIndex > 0 {
		ext := filepath.Ext(name)
		name = fmt.Sprintf("%s_%d%s", name[:len(name)-len(ext)], jobIndex+1, ext)
	}
	path := filepath.Join(a.settings.OutputDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote %s", path)
	return path, nil
}

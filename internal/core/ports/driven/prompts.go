package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when templates have been edited on disk.
	Reload()
}

// Well-known prompt names used throughout the application.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptExtractJobs turns scraped career-page text into job JSON.
	// The template expects a %s placeholder for the cleaned page text.
	PromptExtractJobs = "extract_jobs"

	// PromptColdEmail drafts a cold email to the hiring manager.
	// The template expects %s (job JSON), %s (candidate highlights) and
	// %s (tone) placeholders.
	PromptColdEmail = "cold_email"

	// PromptCoverLetter drafts a cover letter for the job.
	// Placeholders match PromptColdEmail.
	PromptCoverLetter = "cover_letter"
)

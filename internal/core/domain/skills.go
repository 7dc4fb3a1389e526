package domain

// SkillReport is the overlap between a job's required skills and the
// matched resume text. It is derived per request and never persisted.
type SkillReport struct {
	// Matched are the job skills found in the resume text.
	Matched []string

	// Missing are the job skills absent from the resume text.
	Missing []string

	// MatchPercent is round(100 * |matched| / |skills|), 0 for no skills.
	MatchPercent int
}

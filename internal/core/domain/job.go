package domain

// JobPosting is a structured job record extracted from a scraped career
// page. It is immutable once produced by the extractor.
type JobPosting struct {
	// Role is the advertised job title.
	Role string `json:"role"`

	// Experience is the required experience, as free text ("3+ years").
	Experience string `json:"experience"`

	// Skills are the required skills, in the order the posting lists them.
	Skills []string `json:"skills"`

	// Description is the job description text.
	Description string `json:"description"`
}

// HasSkills reports whether the posting lists at least one skill.
func (j JobPosting) HasSkills() bool {
	return len(j.Skills) > 0
}

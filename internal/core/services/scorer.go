package services

import (
	"strings"
	"unicode"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

// ScoreSkills reports which job skills appear in the matched resume
// text. Matching is case-insensitive and respects word boundaries, so
// "java" in the skill list does not match "javascript" in the resume.
// Skills containing symbols, like "c++" or "ci/cd", still match because
// the boundary check only requires that the occurrence is not flanked by
// letters or digits.
func ScoreSkills(skills []string, resumeText string) domain.SkillReport {
	report := domain.SkillReport{
		Matched: []string{},
		Missing: []string{},
	}
	if len(skills) == 0 {
		return report
	}

	haystack := strings.ToLower(resumeText)
	for _, skill := range skills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle != "" && containsWord(haystack, needle) {
			report.Matched = append(report.Matched, skill)
		} else {
			report.Missing = append(report.Missing, skill)
		}
	}

	// Round half up so 2 of 3 reports 67, not 66.
	report.MatchPercent = (len(report.Matched)*100 + len(skills)/2) / len(skills)
	return report
}

// containsWord reports whether needle occurs in haystack without being
// flanked by letters or digits.
func containsWord(haystack, needle string) bool {
	for start := 0; ; {
		i := strings.Index(haystack[start:], needle)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(needle)
		if boundaryAt(haystack, i-1) && boundaryAt(haystack, end) {
			return true
		}
		start = i + 1
	}
}

// boundaryAt reports whether position i is outside the string or holds a
// character that does not extend a word.
func boundaryAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return true
	}
	r := rune(s[i])
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

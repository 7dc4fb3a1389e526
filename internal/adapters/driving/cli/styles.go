package cli

import "github.com/charmbracelet/lipgloss"

// Report styling. Kept deliberately plain so output stays readable on
// both light and dark terminals.
var (
	roleStyle    = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Faint(true)
	matchedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	percentStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	pathStyle    = lipgloss.NewStyle().Underline(true)
)

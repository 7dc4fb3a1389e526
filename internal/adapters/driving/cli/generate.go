package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/services"
)

var (
	generateResume string
	generateURL    string
	generateTone   string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a cold email and cover letter for a job posting",
	Long: `Runs the full pipeline: scrapes the posting page, extracts the
advertised roles, loads your resume into the vector store, matches your
experience against each role's required skills and drafts a cold email
and cover letter per role.

Drafts are written to the output directory as cold_email.txt and
cover_letter.txt.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateResume, "resume", "r", "", "path to the resume file (pdf, docx or plain text)")
	generateCmd.Flags().StringVarP(&generateURL, "url", "u", "", "URL of the job posting page")
	generateCmd.Flags().StringVarP(&generateTone, "tone", "t", "", "writing tone: formal, casual or enthusiastic")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output directory for drafts")
	_ = generateCmd.MarkFlagRequired("resume")
	_ = generateCmd.MarkFlagRequired("url")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	tone := appSettings.Pipeline.Tone
	if generateTone != "" {
		parsed, err := domain.ParseTone(generateTone)
		if err != nil {
			return err
		}
		tone = parsed
	}
	if generateOutput != "" {
		appSettings.OutputDir = generateOutput
	}

	rt, err := newRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	result, err := rt.app.GenerateOutreach(cmd.Context(), generateResume, generateURL, tone)
	if err != nil {
		var extractionErr *domain.ExtractionError
		if errors.As(err, &extractionErr) {
			cmd.PrintErrln("Model response that failed validation:")
			cmd.PrintErrln(extractionErr.Raw)
		}
		return err
	}

	for i, job := range result.Jobs {
		if i > 0 {
			cmd.Println()
		}
		printOutreach(cmd, job)
	}
	return nil
}

func printOutreach(cmd *cobra.Command, outreach services.JobOutreach) {
	cmd.Println(roleStyle.Render(outreach.Job.Role))
	if outreach.Job.Experience != "" {
		cmd.Printf("  %s %s\n", sectionStyle.Render("Experience:"), outreach.Job.Experience)
	}

	printSkillReport(cmd, outreach.Skills)

	cmd.Printf("  %s %s\n", sectionStyle.Render("Email:"), pathStyle.Render(outreach.EmailPath))
	cmd.Printf("  %s %s\n", sectionStyle.Render("Cover letter:"), pathStyle.Render(outreach.CoverLetterPath))
}

func printSkillReport(cmd *cobra.Command, report domain.SkillReport) {
	cmd.Printf("  %s %s\n", sectionStyle.Render("Skill match:"), percentStyle.Render(fmt.Sprintf("%d%%", report.MatchPercent)))
	if len(report.Matched) > 0 {
		cmd.Printf("  %s %s\n", sectionStyle.Render("Matched:"), matchedStyle.Render(strings.Join(report.Matched, ", ")))
	}
	if len(report.Missing) > 0 {
		cmd.Printf("  %s %s\n", sectionStyle.Render("Missing:"), missingStyle.Render(strings.Join(report.Missing, ", ")))
	}
}

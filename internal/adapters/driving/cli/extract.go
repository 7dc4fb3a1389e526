package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [url]",
	Short: "Extract job postings from a career page",
	Long: `Scrapes the page, strips markup and boilerplate and asks the model
for the advertised roles, experience requirements, skills and
descriptions.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output postings as JSON")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	jobs, err := rt.app.FetchAndExtract(cmd.Context(), args[0])
	if err != nil {
		var extractionErr *domain.ExtractionError
		if errors.As(err, &extractionErr) {
			cmd.PrintErrln("Model response that failed validation:")
			cmd.PrintErrln(extractionErr.Raw)
		}
		return err
	}

	if extractJSON {
		data, err := json.MarshalIndent(jobs, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding postings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	for i, job := range jobs {
		if i > 0 {
			cmd.Println()
		}
		cmd.Println(roleStyle.Render(job.Role))
		if job.Experience != "" {
			cmd.Printf("  %s %s\n", sectionStyle.Render("Experience:"), job.Experience)
		}
		if job.HasSkills() {
			cmd.Printf("  %s %s\n", sectionStyle.Render("Skills:"), strings.Join(job.Skills, ", "))
		}
		if job.Description != "" {
			cmd.Printf("  %s\n", snippet(job.Description, 240))
		}
	}
	return nil
}

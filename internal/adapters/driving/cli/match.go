package cli

import (
	"github.com/spf13/cobra"

	"github.com/coldconnect-labs/coldconnect-cli/internal/core/services"
)

var matchCmd = &cobra.Command{
	Use:   "match [skill]...",
	Short: "Match skills against the stored resume",
	Long: `Embeds the given skills as a query, retrieves the most relevant
resume chunks and reports which skills the matched text covers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	result, err := rt.app.MatchSkills(cmd.Context(), args)
	if err != nil {
		return err
	}
	if result.Empty() {
		cmd.Println("No matching resume chunks. Has a resume been ingested?")
		return nil
	}

	for i, chunk := range result.Chunks {
		cmd.Printf("  [%d] distance %.4f\n", i+1, chunk.Distance)
		cmd.Printf("      %s\n", snippet(chunk.Content, 160))
	}
	cmd.Println()

	printSkillReport(cmd, services.ScoreSkills(args, result.Summary()))
	return nil
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

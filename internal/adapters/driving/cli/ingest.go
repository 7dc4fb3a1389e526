package cli

import (
	"github.com/spf13/cobra"
)

var ingestReset bool

var ingestCmd = &cobra.Command{
	Use:   "ingest [resume file]",
	Short: "Load a resume into the vector store",
	Long: `Reads the resume, splits it into chunks, embeds them and stores them
for skill matching. Re-running on an unchanged file is a no-op. Use
--reset to replace a previously loaded resume.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestReset, "reset", false, "clear the stored resume before ingesting")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd.Context())
	if err != nil {
		return err
	}
	defer rt.close()

	if ingestReset {
		if err := rt.matcher.Reset(cmd.Context()); err != nil {
			return err
		}
		cmd.Println("Cleared stored resume.")
	}

	count, err := rt.app.IngestResume(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Resume loaded: %d chunk(s) stored.\n", count)
	return nil
}

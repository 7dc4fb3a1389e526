// Package cli implements the coldconnect command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/ai"
	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/config/file"
	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/docreader"
	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/fetcher"
	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/storage/sqlite"
	"github.com/coldconnect-labs/coldconnect-cli/internal/chunker"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/domain"
	"github.com/coldconnect-labs/coldconnect-cli/internal/core/services"
	"github.com/coldconnect-labs/coldconnect-cli/internal/logger"
)

var (
	verbose   bool
	configDir string
)

var (
	configStore *file.ConfigStore
	promptStore *file.PromptStore
	appSettings domain.AppSettings
)

var rootCmd = &cobra.Command{
	Use:   "coldconnect",
	Short: "Draft cold emails and cover letters from a job posting and your resume",
	Long: `coldconnect scrapes a job posting, extracts the advertised roles and
their required skills, matches them against your ingested resume and
drafts a tailored cold email and cover letter.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return initConfig()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.coldconnect)")
}

// initConfig loads the config file and resolves the typed settings.
// Commands that never talk to a provider still get this far; provider
// validation happens in newRuntime.
func initConfig() error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = store
	appSettings = file.LoadSettings(store)

	prompts, err := file.NewPromptStore("")
	if err != nil {
		return fmt.Errorf("opening prompt store: %w", err)
	}
	promptStore = prompts
	return nil
}

// runtime bundles the wired services for one command invocation with
// everything that must be released afterwards.
type runtime struct {
	app       *services.Application
	matcher   *services.Matcher
	providers *ai.Providers
	store     *sqlite.Store
}

func (r *runtime) close() {
	if r.providers != nil {
		r.providers.Close()
	}
	if r.store != nil {
		if err := r.store.Close(); err != nil {
			logger.Warn("closing vector store: %v", err)
		}
	}
}

// newRuntime validates the settings and wires the full service graph.
func newRuntime(ctx context.Context) (*runtime, error) {
	if err := appSettings.Validate(); err != nil {
		return nil, fmt.Errorf("%w: set providers and API keys via coldconnect settings or the environment", err)
	}

	providers, err := ai.CreateProviders(ctx, appSettings)
	if err != nil {
		return nil, err
	}

	store, err := sqlite.NewStore(appSettings.DataDir)
	if err != nil {
		providers.Close()
		return nil, fmt.Errorf("opening vector store: %w", err)
	}

	ch := chunker.New(chunker.WithChunkSize(appSettings.Pipeline.ChunkSize))
	matcher := services.NewMatcher(docreader.New(), ch, providers.Embedding, store)
	extractor := services.NewExtractor(providers.LLM, promptStore)
	generator := services.NewGenerator(providers.LLM, promptStore)
	pages := fetcher.New(fetcher.Config{})

	return &runtime{
		app:       services.NewApplication(appSettings, pages, matcher, extractor, generator),
		matcher:   matcher,
		providers: providers,
		store:     store,
	}, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

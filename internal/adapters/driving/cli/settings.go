package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coldconnect-labs/coldconnect-cli/internal/adapters/driven/config/file"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure providers, credentials and pipeline options.

Settings live in config.toml under the config directory. API keys may
also come from the GEMINI_API_KEY and GROQ_API_KEY environment
variables, which take precedence over the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value and persist it immediately.

Known keys:
  data_dir, output_dir
  embedding_provider, embedding_model, embedding_base_url,
  embedding_api_key, embedding_timeout_seconds
  llm_provider, llm_model, llm_base_url, llm_api_key,
  llm_timeout_seconds
  chunk_size, match_k, extract_retries, tone`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

// intKeys are the keys stored as integers rather than strings.
var intKeys = map[string]bool{
	file.KeyEmbeddingTimeout: true,
	file.KeyLLMTimeout:       true,
	file.KeyChunkSize:        true,
	file.KeyMatchK:           true,
	file.KeyExtractRetries:   true,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Embedding]")
	cmd.Printf("  Provider: %s\n", appSettings.Embedding.Provider.Description())
	printModel(cmd, appSettings.Embedding.Model)
	if appSettings.Embedding.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", appSettings.Embedding.BaseURL)
	}
	if appSettings.Embedding.Provider.RequiresAPIKey() {
		printAPIKey(cmd, appSettings.Embedding.APIKey)
	}
	cmd.Printf("  Timeout: %s\n", appSettings.Embedding.Timeout)
	cmd.Println()

	cmd.Println("[LLM]")
	cmd.Printf("  Provider: %s\n", appSettings.LLM.Provider.Description())
	printModel(cmd, appSettings.LLM.Model)
	if appSettings.LLM.BaseURL != "" {
		cmd.Printf("  Base URL: %s\n", appSettings.LLM.BaseURL)
	}
	if appSettings.LLM.Provider.RequiresAPIKey() {
		printAPIKey(cmd, appSettings.LLM.APIKey)
	}
	cmd.Printf("  Timeout: %s\n", appSettings.LLM.Timeout)
	cmd.Println()

	cmd.Println("[Pipeline]")
	cmd.Printf("  Chunk size: %d\n", appSettings.Pipeline.ChunkSize)
	cmd.Printf("  Match k: %d\n", appSettings.Pipeline.MatchK)
	cmd.Printf("  Extract retries: %d\n", appSettings.Pipeline.ExtractRetries)
	cmd.Printf("  Tone: %s\n", appSettings.Pipeline.Tone)
	cmd.Println()

	cmd.Printf("Config file: %s\n", configStore.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, raw := args[0], args[1]

	var value any = raw
	if intKeys[key] {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s expects an integer, got %q", key, raw)
		}
		value = n
	}

	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	cmd.Printf("Set %s.\n", key)
	return nil
}

func printModel(cmd *cobra.Command, model string) {
	if model == "" {
		model = "(provider default)"
	}
	cmd.Printf("  Model: %s\n", model)
}

func printAPIKey(cmd *cobra.Command, key string) {
	if key == "" {
		cmd.Println("  API Key: (not set)")
		return
	}
	cmd.Printf("  API Key: %s\n", maskAPIKey(key))
}

// maskAPIKey hides all but the edges of a credential.
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}

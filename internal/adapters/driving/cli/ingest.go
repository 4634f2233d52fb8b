package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/config/file"
)

var ingestIndexURL string

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Build the corpus from the publication index",
	Long: `Discovers acts on the publication index page, fetches and parses
each one, and loads the whole corpus in a single transaction.

Pages that return 404 or a redirect are recorded as stub documents so
later runs skip them. The fetcher spaces requests politely and retries
transient server errors with backoff.`,
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().StringVar(&ingestIndexURL, "index", "", "publication index URL (default from config)")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	indexURL := ingestIndexURL
	if indexURL == "" {
		indexURL = resolveIndexURL()
	}

	cmd.Printf("Ingesting from %s...\n", indexURL)

	report, err := ingestService.Ingest(cmd.Context(), indexURL)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	cmd.Printf("Discovered %d acts, loaded %d documents (%d stubs).\n",
		report.Discovered, report.Loaded, report.Stubs)
	cmd.Printf("  Provisions:  %d (%d duplicates removed, %d conflicting)\n",
		report.Provisions, report.DuplicateProvisions, report.ConflictingDuplicate)
	cmd.Printf("  Definitions: %d\n", report.Definitions)
	cmd.Printf("  References:  %d\n", report.References)

	return nil
}

// resolveIndexURL reads the configured index page, falling back to the
// built-in default when no config store is wired.
func resolveIndexURL() string {
	if configStore != nil {
		return configStore.GetString(file.KeyIndexURL)
	}
	return "https://ghalii.org/legislation/"
}

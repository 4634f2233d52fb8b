package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var updateIndexURL string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check the publication index for new or changed acts",
	Long: `Compares the publication index page against the stored corpus
without writing anything. Reports acts that are new, acts whose titles
have changed and acts already known.

The index fetch is bounded by a hard timeout so the check never hangs
on a slow source.`,
	RunE: runUpdate,
}

func init() {
	updateCmd.Flags().StringVar(&updateIndexURL, "index", "", "publication index URL (default from config)")
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	indexURL := updateIndexURL
	if indexURL == "" {
		indexURL = resolveIndexURL()
	}

	cmd.Printf("Checking %s...\n", indexURL)

	report, err := ingestService.CheckUpdates(cmd.Context(), indexURL)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	if len(report.New) == 0 && len(report.Changed) == 0 {
		cmd.Printf("Corpus is up to date (%d acts known).\n", report.Known)
		return nil
	}

	if len(report.New) > 0 {
		cmd.Printf("New acts (%d):\n", len(report.New))
		for _, entry := range report.New {
			cmd.Printf("  %s (Act %d of %d)\n", entry.Title, entry.ActNumber, entry.Year)
		}
	}
	if len(report.Changed) > 0 {
		cmd.Printf("Changed acts (%d):\n", len(report.Changed))
		for _, entry := range report.Changed {
			cmd.Printf("  %s (Act %d of %d)\n", entry.Title, entry.ActNumber, entry.Year)
		}
	}
	cmd.Println("Run 'ghana-law ingest' to refresh the corpus.")

	return nil
}

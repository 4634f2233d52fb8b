// Package cli implements the command-line interface using cobra.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/config/file"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/fetch"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/storage/sqlite"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driven"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/ports/driving"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/core/services"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// fetchTimeout is the per-request HTTP timeout for source fetches.
const fetchTimeout = 30 * time.Second

// Services wired by initServices for the real binary, or replaced with
// mocks by tests that drive rootCmd directly.
var (
	ingestService   driving.IngestService
	citationService driving.CitationService
	searchService   driving.SearchService

	actStore        driven.ActStore
	provisionStore  driven.ProvisionStore
	definitionStore driven.DefinitionStore
	referenceStore  driven.ReferenceStore

	configStore *file.ConfigStore
	corpusStore *sqlite.Store
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "ghana-law",
	Short: "Ghanaian legislation corpus and citation tools",
	Long: `ghana-law ingests Ghanaian acts from their publication index,
stores them in a local full-text corpus and serves them to AI
assistants over the Model Context Protocol.

It also parses, validates and formats legal citations such as
"Data Protection Act 2012 (Act 843), s. 20(1)".`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// Execute wires the real adapters and runs the root command.
func Execute() {
	if err := initServices(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeServices()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initServices builds the adapter stack: config, sqlite corpus store,
// polite fetcher and the core services on top of them.
func initServices() error {
	cfg, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configStore = cfg

	store, err := sqlite.NewStore(cfg.GetString(file.KeyDataDir))
	if err != nil {
		return fmt.Errorf("opening corpus store: %w", err)
	}
	corpusStore = store

	actStore = store.Acts()
	provisionStore = store.Provisions()
	definitionStore = store.Definitions()
	referenceStore = store.References()

	fetcher := fetch.New(fetchTimeout)

	ingestService = services.NewIngestService(fetcher, store, store.Acts(), store.Metadata())
	citationService = services.NewCitationService(store.Acts(), store.Provisions())
	searchService = services.NewSearchService(store.SearchIndex())

	return nil
}

// closeServices releases the corpus store. Safe to call when wiring
// failed partway.
func closeServices() {
	if corpusStore != nil {
		if err := corpusStore.Close(); err != nil {
			logger.Warn("closing corpus store: %v", err)
		}
	}
}

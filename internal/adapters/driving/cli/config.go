package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application configuration",
	Long: `View and change configuration stored in config.toml.

Known keys:
  source.base_url   - root of the legislation source site
  source.index_url  - publication index page listing all acts
  storage.data_dir  - corpus database directory
  mcp.http_addr     - listen address for the MCP HTTP transport`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Configuration (%s)\n", configStore.Path())
	cmd.Println()
	for _, key := range []string{file.KeyBaseURL, file.KeyIndexURL, file.KeyDataDir, file.KeyHTTPAddr} {
		value := configStore.GetString(key)
		if value == "" {
			value = "(not set)"
		}
		cmd.Printf("  %-18s %s\n", key, value)
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, value := args[0], args[1]
	if err := configStore.Set(key, value); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

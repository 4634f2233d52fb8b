package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driven/config/file"
	"github.com/Ansvar-Systems/ghana-law-mcp/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the corpus to AI
assistants.

By default, the server communicates over stdio using JSON-RPC and can
be used with Claude Desktop and other MCP-compatible AI assistants.

Use --http to serve over HTTP instead, on the configured listen
address or one given with --addr.

Examples:
  # Stdio mode (default, for Claude Desktop)
  ghana-law mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  ghana-law mcp serve --http --addr localhost:8321

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ghana-law": {
        "command": "/path/to/ghana-law",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().Bool("http", false, "serve over HTTP instead of stdio")
	mcpServeCmd.Flags().String("addr", "", "HTTP listen address (default from config)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	useHTTP, err := cmd.Flags().GetBool("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}
	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return fmt.Errorf("getting addr flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:      searchService,
		Citation:    citationService,
		Acts:        actStore,
		Provisions:  provisionStore,
		Definitions: definitionStore,
		References:  referenceStore,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if useHTTP || addr != "" {
		if addr == "" {
			addr = resolveHTTPAddr()
		}
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// resolveHTTPAddr reads the configured listen address, falling back to
// the built-in default when no config store is wired.
func resolveHTTPAddr() string {
	if configStore != nil {
		return configStore.GetString(file.KeyHTTPAddr)
	}
	return "localhost:8321"
}

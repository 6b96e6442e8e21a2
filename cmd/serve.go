package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mj1618/scratchpad/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing scratchpad tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes toggle, show,
hide and list as tools. Scratchpads defined in the config file can be
toggled by name.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  scratchpad serve
  scratchpad serve --transport streamable-http --port 8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")

	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	defer provider.Close()

	return server.New(provider, cfg, logger).Serve(server.Config{
		Transport: transport,
		Port:      port,
	})
}

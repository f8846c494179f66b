package main

import (
	"fmt"
	"os"

	"github.com/CakeVR/dialogic/internal/cli"
	mcpAdapter "github.com/CakeVR/dialogic/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server on stdio",
	Long:  `Exposes parse_directive, preview_directive and list_characters as MCP tools for editor AI integrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		profilePaths, _ := cmd.Flags().GetStringSlice("profile")

		logger := cli.NewLogger(verbose)
		engine, err := cli.NewEngine(logger, profilePaths)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		server := mcpAdapter.NewServer(engine)
		if err := server.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

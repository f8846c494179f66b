package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/CakeVR/dialogic/internal/cli"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <directive>",
	Short: "Parse a directive and report problems",
	Long:  `Parses the directive without applying it and prints the resulting commands. Exits non-zero if any segment is malformed.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		logger := cli.NewLogger(verbose)

		engine, err := cli.NewEngine(logger, nil)
		if err != nil {
			fmt.Printf("Error initializing engine: %v\n", err)
			os.Exit(1)
		}

		directive := strings.Join(args, " ")
		commands, diags := engine.Parse(directive)

		for _, c := range commands {
			fmt.Printf("%-5s %s\n", c.Op, c.TargetPath)
		}
		for _, d := range diags {
			fmt.Fprintf(os.Stderr, "warning: %s\n", d)
		}

		if len(diags) > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

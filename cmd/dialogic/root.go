package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dialogic",
	Short: "Dialogic is a layered-portrait directive toolkit",
	Long:  `Dialogic parses and previews layer directives: the compact commands dialogue authors use to toggle sprite layers on character portraits.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringSlice("profile", nil, "Character profile YAML file (repeatable)")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

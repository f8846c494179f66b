package main

import (
	"fmt"

	"github.com/CakeVR/dialogic"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dialogic",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dialogic version %s\n", dialogic.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/CakeVR/dialogic/internal/cli"
	"github.com/CakeVR/dialogic/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Render a profile's layer tree as Mermaid",
	Long:  `Prints the layer hierarchy of each loaded profile as a Mermaid flowchart, ready to paste into documentation.`,
	Run: func(cmd *cobra.Command, args []string) {
		profilePaths, _ := cmd.Flags().GetStringSlice("profile")
		if len(profilePaths) == 0 {
			fmt.Fprintln(os.Stderr, "at least one --profile is required")
			os.Exit(1)
		}

		loader, err := cli.LoadProfiles(profilePaths)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load profiles: %v\n", err)
			os.Exit(1)
		}

		names, _ := loader.ListCharacters()
		for _, name := range names {
			profile, err := loader.GetProfile(name)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to load %s: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Println(graph.GenerateMermaid(profile))
		}
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

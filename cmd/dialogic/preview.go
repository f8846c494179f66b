package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/CakeVR/dialogic/internal/cli"
	"github.com/CakeVR/dialogic/pkg/schema"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var previewCmd = &cobra.Command{
	Use:   "preview <directive>",
	Short: "Apply a directive to a character profile",
	Long:  `Loads the given profile, applies the directive to a fresh tree seeded with the authored defaults, and prints the resulting layer visibility.`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runPreview(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "Preview failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	previewCmd.Flags().String("character", "", "Character to preview (defaults to the only loaded profile)")
	previewCmd.Flags().String("settings", "", "Optional settings YAML merged over the built-in defaults")
	rootCmd.AddCommand(previewCmd)
}

// loadSettings merges a user settings file over the defaults. No file means
// plain defaults.
func loadSettings(path string) (map[string]any, error) {
	user := map[string]any{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &user); err != nil {
			return nil, fmt.Errorf("invalid settings %s: %w", path, err)
		}
	}
	return schema.MergeSettings(schema.DefaultSettings(), user), nil
}

func warnOnMissing(settings map[string]any) bool {
	portraits, ok := settings["portraits"].(map[string]any)
	if !ok {
		return true
	}
	warn, ok := portraits["warn_on_missing"].(bool)
	if !ok {
		return true
	}
	return warn
}

func runPreview(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	profilePaths, _ := cmd.Flags().GetStringSlice("profile")
	character, _ := cmd.Flags().GetString("character")
	settingsPath, _ := cmd.Flags().GetString("settings")

	if len(profilePaths) == 0 {
		return fmt.Errorf("at least one --profile is required")
	}

	settings, err := loadSettings(settingsPath)
	if err != nil {
		return err
	}

	logger := cli.NewLogger(verbose)
	engine, err := cli.NewEngine(logger, profilePaths)
	if err != nil {
		return err
	}

	if character == "" {
		names, err := engine.Characters()
		if err != nil {
			return err
		}
		if len(names) != 1 {
			return fmt.Errorf("--character is required when %d profiles are loaded", len(names))
		}
		character = names[0]
	}

	result, err := engine.Preview(cmd.Context(), character, strings.Join(args, " "))
	if err != nil {
		return err
	}

	paths := make([]string, 0, len(result.Visibility))
	for p := range result.Visibility {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	fmt.Printf("%s:\n", result.Character)
	for _, p := range paths {
		marker := " "
		if result.Visibility[p] {
			marker = "*"
		}
		fmt.Printf("  [%s] %s\n", marker, p)
	}

	if warnOnMissing(settings) {
		for _, d := range result.Diagnostics {
			fmt.Fprintf(os.Stderr, "warning: %s\n", d)
		}
	}
	return nil
}

// Package cli holds the shared plumbing of the dialogic CLI commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/CakeVR/dialogic"
	"github.com/CakeVR/dialogic/internal/logging"
	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/schema"
	"golang.org/x/term"
)

// NewLogger builds the CLI logger honoring the --verbose flag.
func NewLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// LoadProfiles reads YAML profile files and builds an in-memory loader.
func LoadProfiles(paths []string) (*memory.Loader, error) {
	profiles := make([]*domain.Profile, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
		}
		profile, err := schema.DecodeProfile(data)
		if err != nil {
			return nil, fmt.Errorf("invalid profile %s: %w", path, err)
		}
		profiles = append(profiles, profile)
	}
	return memory.NewFromProfiles(profiles...)
}

// NewEngine initializes an engine with standard CLI conventions.
func NewEngine(logger *slog.Logger, profilePaths []string, extra ...dialogic.Option) (*dialogic.Engine, error) {
	opts := []dialogic.Option{dialogic.WithLogger(logger)}

	if len(profilePaths) > 0 {
		loader, err := LoadProfiles(profilePaths)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dialogic.WithLoader(loader))
	}
	opts = append(opts, extra...)

	return dialogic.New(opts...), nil
}

// IsInteractive reports whether stdout is a terminal. Pretty rendering is
// reserved for humans; pipes get plain text.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

package dialogic

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/CakeVR/dialogic/internal/compiler"
	"github.com/CakeVR/dialogic/internal/logging"
	"github.com/CakeVR/dialogic/internal/runtime"
	"github.com/CakeVR/dialogic/pkg/adapters/memory"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/ports"
	"github.com/CakeVR/dialogic/pkg/session"
)

// Version is the library version, reported by the CLI and adapters.
const Version = "0.3.0"

// Engine is the high-level entry point for the Dialogic library.
// It wraps the internal evaluator and provides a simplified API for consumers.
type Engine struct {
	runtime *runtime.Engine
	loader  ports.ProfileLoader
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a ProfileLoader, enabling Preview.
func WithLoader(l ports.ProfileLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets the logger for parse and evaluation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates a directive engine.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.runtime = runtime.NewEngine(
		runtime.WithLogger(e.logger),
		runtime.WithHooks(e.hooks),
	)
	return e
}

// Parse compiles a directive string into an ordered command sequence.
// Malformed segments are dropped and reported as diagnostics; Parse itself
// never fails. It is pure and safe for concurrent use.
func (e *Engine) Parse(input string) ([]domain.Command, []domain.Diagnostic) {
	commands, diags := compiler.Parse(input)
	for _, d := range diags {
		e.logger.Warn("directive segment dropped",
			"kind", string(d.Kind),
			"segment", d.Subject,
			"reason", d.Message,
		)
		if e.hooks.OnDiagnostic != nil {
			e.hooks.OnDiagnostic(context.Background(), &domain.DiagnosticEvent{
				EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventDiagnostic},
				Diagnostic: d,
			})
		}
	}
	return commands, diags
}

// Apply evaluates commands in order against the host tree. Failed commands
// surface as diagnostics; the rest still run.
func (e *Engine) Apply(ctx context.Context, commands []domain.Command, tree ports.LayerTree) []domain.Diagnostic {
	return e.runtime.Apply(ctx, commands, tree)
}

// Run parses input and applies it to tree in one call, returning the parsed
// commands and all diagnostics from both phases.
func (e *Engine) Run(ctx context.Context, input string, tree ports.LayerTree) ([]domain.Command, []domain.Diagnostic) {
	commands, diags := e.Parse(input)
	diags = append(diags, e.Apply(ctx, commands, tree)...)
	return commands, diags
}

// PreviewResult is what a directive leaves on screen for a character.
type PreviewResult struct {
	Character   string              `json:"character"`
	Commands    []domain.Command    `json:"commands"`
	Visibility  domain.Visibility   `json:"visibility"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// Preview loads the character's profile, applies the directive to a fresh
// in-memory tree seeded with the authored defaults, and returns the resulting
// visibility snapshot. Requires a loader (see WithLoader).
func (e *Engine) Preview(ctx context.Context, character string, directive string) (*PreviewResult, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("preview requires a profile loader")
	}

	profile, err := e.loader.GetProfile(character)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile %s: %w", character, err)
	}

	tree := memory.NewTree(profile)
	commands, diags := e.Run(ctx, directive, tree)

	return &PreviewResult{
		Character:   profile.Character,
		Commands:    commands,
		Visibility:  tree.Snapshot(),
		Diagnostics: diags,
	}, nil
}

// SessionResult is the outcome of applying a directive inside a session.
type SessionResult struct {
	SessionID   string              `json:"session_id"`
	Character   string              `json:"character"`
	Commands    []domain.Command    `json:"commands"`
	Visibility  domain.Visibility   `json:"visibility"`
	History     []string            `json:"history"`
	Diagnostics []domain.Diagnostic `json:"diagnostics"`
}

// ApplySession applies a directive to a persistent preview session, creating
// the session on first use. The stored visibility snapshot is restored onto a
// fresh tree, the directive runs, and the result is saved back under the
// session lock. An empty directive just loads (or starts) the session.
func (e *Engine) ApplySession(ctx context.Context, sessions *session.Manager, sessionID, character, directive string) (*SessionResult, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("sessions require a profile loader")
	}

	var result *SessionResult
	err := sessions.WithLock(ctx, sessionID, func(ctx context.Context) error {
		state, err := sessions.Store().Load(ctx, sessionID)
		switch {
		case errors.Is(err, domain.ErrSessionNotFound):
			if character == "" {
				return fmt.Errorf("new session needs a character: %w", err)
			}
			state = nil
		case err != nil:
			return fmt.Errorf("failed to load session: %w", err)
		default:
			if character != "" && character != state.Character {
				return fmt.Errorf("session %s belongs to character %s", sessionID, state.Character)
			}
			character = state.Character
		}

		profile, err := e.loader.GetProfile(character)
		if err != nil {
			return fmt.Errorf("failed to load profile %s: %w", character, err)
		}

		tree := memory.NewTree(profile)
		if state == nil {
			state = domain.NewState(profile.Character)
		} else {
			tree.Restore(state.Visibility)
		}

		var commands []domain.Command
		var diags []domain.Diagnostic
		if strings.TrimSpace(directive) != "" {
			commands, diags = e.Run(ctx, directive, tree)
			state.History = append(state.History, directive)
		}
		state.Visibility = tree.Snapshot()

		if err := sessions.Store().Save(ctx, sessionID, state); err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}

		result = &SessionResult{
			SessionID:   sessionID,
			Character:   state.Character,
			Commands:    commands,
			Visibility:  state.Visibility,
			History:     state.History,
			Diagnostics: diags,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Characters lists the characters available to Preview.
func (e *Engine) Characters() ([]string, error) {
	if e.loader == nil {
		return nil, fmt.Errorf("no profile loader configured")
	}
	return e.loader.ListCharacters()
}

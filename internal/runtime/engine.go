// Package runtime evaluates parsed layer commands against a host layer tree.
package runtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/CakeVR/dialogic/internal/logging"
	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/ports"
)

// Engine applies command sequences to layer trees. It holds no per-call
// state beyond its logger and hooks, so one Engine can serve many trees as
// long as the host serializes Apply calls per tree.
type Engine struct {
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets the logger for evaluation diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an evaluator with the given options.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Apply evaluates commands in order against tree. It is a left-to-right fold
// with host side effects: no command is retried or rolled back, and a failed
// command never aborts the rest. Failures come back as diagnostics; the call
// itself always completes and never errors.
func (e *Engine) Apply(ctx context.Context, commands []domain.Command, tree ports.LayerTree) []domain.Diagnostic {
	var diags []domain.Diagnostic

	for _, cmd := range commands {
		e.fireCommand(ctx, cmd)

		node, ok := tree.Resolve(cmd.TargetPath)
		if !ok {
			diags = append(diags, e.diagnose(ctx, domain.Diagnostic{
				Kind:    domain.DiagUnresolvedPath,
				Subject: cmd.TargetPath,
				Message: "no node at path",
			}))
			continue
		}
		if !tree.IsLayer(node) {
			diags = append(diags, e.diagnose(ctx, domain.Diagnostic{
				Kind:    domain.DiagNotALayerNode,
				Subject: cmd.TargetPath,
				Message: "node is not a layer",
			}))
			continue
		}

		switch cmd.Op {
		case domain.OpShow:
			e.show(ctx, tree, node, cmd.TargetPath)
		case domain.OpHide:
			e.hide(ctx, tree, node, cmd.TargetPath)
		case domain.OpSetExclusive:
			e.setExclusive(ctx, tree, node, cmd.TargetPath)
		}
	}

	return diags
}

// setExclusive hides every layer-node sibling of target, then shows target.
// The self-exclusion check below keeps the contract independent of whether
// the host's sibling enumeration includes the target: the target is never
// hidden and receives exactly one Show.
func (e *Engine) setExclusive(ctx context.Context, tree ports.LayerTree, target ports.Node, path string) {
	for _, sibling := range tree.Siblings(target) {
		if sibling == target {
			continue
		}
		if !tree.IsLayer(sibling) {
			continue
		}
		tree.Hide(sibling)
	}
	e.show(ctx, tree, target, path)
}

func (e *Engine) show(ctx context.Context, tree ports.LayerTree, node ports.Node, path string) {
	tree.Show(node)
	if e.hooks.OnLayerShow != nil {
		e.hooks.OnLayerShow(ctx, &domain.LayerEvent{
			EventBase: eventBase(domain.EventLayerShow),
			Path:      path,
		})
	}
}

func (e *Engine) hide(ctx context.Context, tree ports.LayerTree, node ports.Node, path string) {
	tree.Hide(node)
	if e.hooks.OnLayerHide != nil {
		e.hooks.OnLayerHide(ctx, &domain.LayerEvent{
			EventBase: eventBase(domain.EventLayerHide),
			Path:      path,
		})
	}
}

func (e *Engine) fireCommand(ctx context.Context, cmd domain.Command) {
	if e.hooks.OnCommandApply != nil {
		e.hooks.OnCommandApply(ctx, &domain.CommandEvent{
			EventBase: eventBase(domain.EventCommandApply),
			Op:        cmd.Op,
			Path:      cmd.TargetPath,
		})
	}
}

// diagnose logs the diagnostic, fires the hook, and hands it back for the
// caller's return slice.
func (e *Engine) diagnose(ctx context.Context, d domain.Diagnostic) domain.Diagnostic {
	e.logger.WarnContext(ctx, "directive command skipped",
		"kind", string(d.Kind),
		"subject", d.Subject,
		"reason", d.Message,
	)
	if e.hooks.OnDiagnostic != nil {
		e.hooks.OnDiagnostic(ctx, &domain.DiagnosticEvent{
			EventBase:  eventBase(domain.EventDiagnostic),
			Diagnostic: d,
		})
	}
	return d
}

func eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}

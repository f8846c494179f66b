package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventCommandApply EventType = "command_apply"
	EventDiagnostic   EventType = "diagnostic"
	EventLayerShow    EventType = "layer_show"
	EventLayerHide    EventType = "layer_hide"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommandEvent represents the evaluation of one directive command.
type CommandEvent struct {
	EventBase
	Op   Op     `json:"op"`
	Path string `json:"path"`
}

// DiagnosticEvent wraps a diagnostic emitted during parse or apply.
type DiagnosticEvent struct {
	EventBase
	Diagnostic Diagnostic `json:"diagnostic"`
}

// LayerEvent represents a visibility change on a single layer node.
type LayerEvent struct {
	EventBase
	Path string `json:"path"`
}

// LifecycleHooks defines callbacks for engine observability.
// Nil hooks are skipped; hooks run synchronously on the calling goroutine.
type LifecycleHooks struct {
	OnCommandApply func(context.Context, *CommandEvent)
	OnDiagnostic   func(context.Context, *DiagnosticEvent)
	OnLayerShow    func(context.Context, *LayerEvent)
	OnLayerHide    func(context.Context, *LayerEvent)
}

package dsl

import (
	"strings"

	"github.com/CakeVR/dialogic/pkg/domain"
)

// Builder accumulates directive commands in order.
type Builder struct {
	commands []domain.Command
}

// New creates an empty directive builder.
func New() *Builder {
	return &Builder{}
}

// Show appends a show command for path.
func (b *Builder) Show(path string) *Builder {
	return b.append(domain.OpShow, path)
}

// Hide appends a hide command for path.
func (b *Builder) Hide(path string) *Builder {
	return b.append(domain.OpHide, path)
}

// Set appends a set-exclusive command for path.
func (b *Builder) Set(path string) *Builder {
	return b.append(domain.OpSetExclusive, path)
}

func (b *Builder) append(op domain.Op, path string) *Builder {
	path = strings.TrimSpace(strings.ReplaceAll(path, `\`, ""))
	if path == "" {
		// Nothing addressable; skip rather than emit a malformed segment.
		return b
	}
	b.commands = append(b.commands, domain.Command{Op: op, TargetPath: path})
	return b
}

// Commands returns the accumulated sequence, ready for Engine.Apply.
func (b *Builder) Commands() []domain.Command {
	out := make([]domain.Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// String renders the canonical directive text.
func (b *Builder) String() string {
	parts := make([]string, len(b.commands))
	for i, c := range b.commands {
		parts[i] = string(c.Op) + " " + c.TargetPath
	}
	return strings.Join(parts, ", ")
}

package domain

import "fmt"

// DiagnosticKind categorizes a non-fatal problem found while parsing or
// evaluating a directive.
type DiagnosticKind string

const (
	// DiagMalformedSegment means a comma-delimited segment did not match the
	// directive grammar. The segment is dropped; parsing continues.
	DiagMalformedSegment DiagnosticKind = "malformed_segment"
	// DiagUnresolvedPath means the tree could not resolve a command's target
	// path. The command is skipped; evaluation continues.
	DiagUnresolvedPath DiagnosticKind = "unresolved_path"
	// DiagNotALayerNode means the resolved node is not a layer node. The
	// command is skipped; evaluation continues.
	DiagNotALayerNode DiagnosticKind = "not_a_layer_node"
)

// Diagnostic reports one non-fatal problem. Parse and Apply never fail on
// bad input; they return diagnostics so callers (and tests) can inspect what
// was dropped.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`
	// Subject is the offending text: the raw segment for parse diagnostics,
	// the target path for evaluation diagnostics.
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s (%q)", d.Kind, d.Message, d.Subject)
}

// Package compiler turns raw layer-directive strings into command sequences.
//
// The grammar is deliberately tiny. A directive is a comma-separated list of
// segments; each segment is an operator token followed by a target path:
//
//	directive := segment (',' segment)*
//	segment   := WS* operator WS+ path WS*
//	operator  := "show" | "hide" | "set"
//	path      := non-whitespace-char+
//
// Operators are case-sensitive and must open the segment as an exact token;
// content after the path is ignored. Literal backslashes are stripped from
// paths so authors pasting engine-style escaped paths get the node name they
// meant.
package compiler

import (
	"regexp"
	"strings"

	"github.com/CakeVR/dialogic/pkg/domain"
)

// segmentRe captures the operator and path of one segment. Anchored so the
// operator must be the segment's first token; "unshow x" or "foo show a" do
// not parse. Compiled once at init; the package holds no other state, so
// Parse is safe for concurrent use.
var segmentRe = regexp.MustCompile(`^(show|hide|set)\s+(\S+)`)

var operators = map[string]domain.Op{
	"show": domain.OpShow,
	"hide": domain.OpHide,
	"set":  domain.OpSetExclusive,
}

// Parse splits input into comma-delimited segments and compiles each into a
// Command. Malformed segments contribute a diagnostic instead of a command;
// parsing never fails. Commands come back in segment order, which matters:
// the evaluator applies them left to right against shared state, so later
// commands override earlier ones.
//
// Empty or whitespace-only input yields an empty sequence.
func Parse(input string) ([]domain.Command, []domain.Diagnostic) {
	var commands []domain.Command
	var diags []domain.Diagnostic

	for _, raw := range strings.Split(input, ",") {
		segment := strings.TrimSpace(raw)
		if segment == "" {
			continue
		}

		m := segmentRe.FindStringSubmatch(segment)
		if m == nil {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.DiagMalformedSegment,
				Subject: segment,
				Message: "segment does not match 'show|hide|set <path>'",
			})
			continue
		}

		op, ok := operators[m[1]]
		if !ok {
			// Unreachable while the regexp and the operator table agree,
			// but a dropped segment beats a bogus command if they drift.
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.DiagMalformedSegment,
				Subject: segment,
				Message: "unknown operator " + m[1],
			})
			continue
		}

		path := strings.TrimSpace(strings.ReplaceAll(m[2], `\`, ""))
		if path == "" {
			diags = append(diags, domain.Diagnostic{
				Kind:    domain.DiagMalformedSegment,
				Subject: segment,
				Message: "target path is empty after stripping escapes",
			})
			continue
		}

		commands = append(commands, domain.Command{Op: op, TargetPath: path})
	}

	return commands, diags
}

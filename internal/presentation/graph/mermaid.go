// Package graph renders portrait layer trees for introspection tooling.
package graph

import (
	"fmt"
	"strings"

	"github.com/CakeVR/dialogic/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a profile's layer tree.
// Semantic styling:
//   - Character root: ((Circle))
//   - Group: [[Subroutine]]
//   - Sprite: [Rectangle], annotated with an eye icon when visible by default
func GenerateMermaid(profile *domain.Profile) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	root := sanitizeMermaidID(profile.Character)
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", root, profile.Character))
	writeLayers(&sb, root, "", profile.Layers)

	return sb.String()
}

func writeLayers(sb *strings.Builder, parentID, prefix string, layers []domain.LayerDef) {
	for _, l := range layers {
		path := l.Name
		if prefix != "" {
			path = prefix + "/" + l.Name
		}
		id := sanitizeMermaidID(path)

		opener, closer := "[", "]"
		if l.Type == domain.LayerTypeGroup {
			opener, closer = "[[", "]]"
		}

		label := l.Name
		if l.Type != domain.LayerTypeGroup && l.Visible {
			label = "👁 " + label
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label, closer))
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", parentID, id))

		writeLayers(sb, id, path, l.Children)
	}
}

// sanitizeMermaidID keeps IDs to characters Mermaid accepts unquoted.
func sanitizeMermaidID(id string) string {
	replacer := strings.NewReplacer("/", "_", " ", "_", "-", "_", ".", "_")
	return replacer.Replace(id)
}

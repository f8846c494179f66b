// Package memory provides in-memory adapters: a layer tree built from a
// profile, a profile loader, and a state store. They are the reference
// implementations used by tests and the preview tooling; a real host would
// bridge the same ports to its scene graph.
package memory

import (
	"sort"
	"strings"

	"github.com/CakeVR/dialogic/pkg/domain"
	"github.com/CakeVR/dialogic/pkg/ports"
)

type treeNode struct {
	name    string
	path    string
	isLayer bool
	visible bool
	parent  *treeNode
}

// Tree implements ports.LayerTree over a domain.Profile. It tracks visibility
// per node and can snapshot the whole tree, which is how the preview layer
// reports "what would this directive leave on screen".
//
// Sibling enumeration includes the queried node itself; the evaluator is
// expected to normalize that (and tests rely on it doing so).
type Tree struct {
	root  *treeNode // synthetic, never resolved
	nodes map[string]*treeNode
}

// NewTree builds a tree from the profile's layer definitions, honoring
// authored default visibility.
func NewTree(profile *domain.Profile) *Tree {
	t := &Tree{
		root:  &treeNode{},
		nodes: make(map[string]*treeNode),
	}
	t.add(t.root, "", profile.Layers)
	return t
}

func (t *Tree) add(parent *treeNode, prefix string, defs []domain.LayerDef) {
	for _, def := range defs {
		path := def.Name
		if prefix != "" {
			path = prefix + "/" + def.Name
		}
		n := &treeNode{
			name:    def.Name,
			path:    path,
			isLayer: def.Type != domain.LayerTypeGroup,
			visible: def.Visible,
			parent:  parent,
		}
		t.nodes[path] = n
		t.add(n, path, def.Children)
	}
}

// Resolve implements ports.LayerTree.
func (t *Tree) Resolve(path string) (ports.Node, bool) {
	n, ok := t.nodes[strings.Trim(path, "/")]
	if !ok {
		return nil, false
	}
	return n, true
}

// Siblings returns every node sharing the target's parent, target included.
func (t *Tree) Siblings(node ports.Node) []ports.Node {
	target := node.(*treeNode)
	var out []ports.Node
	for _, n := range t.nodes {
		if n.parent == target.parent {
			out = append(out, n)
		}
	}
	return out
}

// IsLayer implements ports.LayerTree.
func (t *Tree) IsLayer(node ports.Node) bool {
	return node.(*treeNode).isLayer
}

// Show implements ports.LayerTree.
func (t *Tree) Show(node ports.Node) {
	node.(*treeNode).visible = true
}

// Hide implements ports.LayerTree.
func (t *Tree) Hide(node ports.Node) {
	node.(*treeNode).visible = false
}

// Visible reports the current visibility of the node at path.
func (t *Tree) Visible(path string) bool {
	n, ok := t.nodes[path]
	return ok && n.visible
}

// Snapshot returns the visibility of every layer node (groups excluded),
// keyed by path.
func (t *Tree) Snapshot() domain.Visibility {
	out := make(domain.Visibility, len(t.nodes))
	for path, n := range t.nodes {
		if n.isLayer {
			out[path] = n.visible
		}
	}
	return out
}

// Restore overwrites node visibility from a saved snapshot. Paths the tree
// no longer has (profile edited since the snapshot) are skipped.
func (t *Tree) Restore(vis domain.Visibility) {
	for path, visible := range vis {
		if n, ok := t.nodes[path]; ok {
			n.visible = visible
		}
	}
}

// Paths returns all node paths in deterministic order. Used by introspection
// tooling and error messages.
func (t *Tree) Paths() []string {
	paths := make([]string, 0, len(t.nodes))
	for p := range t.nodes {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

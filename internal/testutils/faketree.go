// Package testutils provides shared fakes for engine tests.
package testutils

import (
	"strings"

	"github.com/CakeVR/dialogic/pkg/ports"
)

// FakeNode is one node of a FakeTree.
type FakeNode struct {
	Path    string
	Layer   bool
	Visible bool
}

// FakeTree is a recording, in-memory ports.LayerTree. Unlike the production
// memory adapter it records every Show/Hide call and lets tests flip whether
// sibling enumeration includes the queried node, so evaluator normalization
// can be exercised under both host conventions.
type FakeTree struct {
	nodes map[string]*FakeNode

	// IncludeSelfInSiblings controls the host enumeration convention.
	IncludeSelfInSiblings bool

	// ShowCalls and HideCalls record target paths in call order.
	ShowCalls []string
	HideCalls []string
}

// NewFakeTree creates an empty tree.
func NewFakeTree() *FakeTree {
	return &FakeTree{nodes: make(map[string]*FakeNode)}
}

// AddLayer registers a layer node at path with the given starting visibility.
func (t *FakeTree) AddLayer(path string, visible bool) *FakeNode {
	n := &FakeNode{Path: path, Layer: true, Visible: visible}
	t.nodes[path] = n
	return n
}

// AddGroup registers a non-layer node at path.
func (t *FakeTree) AddGroup(path string) *FakeNode {
	n := &FakeNode{Path: path}
	t.nodes[path] = n
	return n
}

// Node returns the node registered at path, or nil.
func (t *FakeTree) Node(path string) *FakeNode {
	return t.nodes[path]
}

// Resolve implements ports.LayerTree.
func (t *FakeTree) Resolve(path string) (ports.Node, bool) {
	n, ok := t.nodes[path]
	if !ok {
		return nil, false
	}
	return n, true
}

// Siblings returns all nodes sharing the target's parent path, honoring
// IncludeSelfInSiblings.
func (t *FakeTree) Siblings(node ports.Node) []ports.Node {
	target := node.(*FakeNode)
	parent := parentPath(target.Path)

	var out []ports.Node
	for _, n := range t.nodes {
		if parentPath(n.Path) != parent {
			continue
		}
		if n == target && !t.IncludeSelfInSiblings {
			continue
		}
		out = append(out, n)
	}
	return out
}

// IsLayer implements ports.LayerTree.
func (t *FakeTree) IsLayer(node ports.Node) bool {
	return node.(*FakeNode).Layer
}

// Show implements ports.LayerTree.
func (t *FakeTree) Show(node ports.Node) {
	n := node.(*FakeNode)
	n.Visible = true
	t.ShowCalls = append(t.ShowCalls, n.Path)
}

// Hide implements ports.LayerTree.
func (t *FakeTree) Hide(node ports.Node) {
	n := node.(*FakeNode)
	n.Visible = false
	t.HideCalls = append(t.HideCalls, n.Path)
}

func parentPath(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return ""
}

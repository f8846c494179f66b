package ports

// Node is an opaque handle to one node of a host layer tree. The engine never
// inspects it; it only passes handles back into the owning LayerTree and
// compares them for identity, so handles must be comparable (typically
// pointers into the host's tree).
type Node any

// LayerTree is the host capability the directive evaluator mutates. It is the
// only surface the engine needs from a renderer: name-based lookup plus
// show/hide. Implementations are not required to be safe for concurrent
// mutation; the engine assumes the host serializes Apply calls per tree.
type LayerTree interface {
	// Resolve looks up a node by its slash-delimited relative path.
	// The second return is false when no node exists at that path.
	Resolve(path string) (Node, bool)

	// Siblings returns the nodes sharing the target's parent. The slice may
	// include the target itself or not, per host convention; the evaluator
	// normalizes either way.
	Siblings(node Node) []Node

	// IsLayer reports whether the node is a renderable layer (as opposed to
	// a structural group or some other scene object).
	IsLayer(node Node) bool

	// Show makes the node visible. Showing an already-visible node is a no-op.
	Show(node Node)

	// Hide makes the node invisible. Hiding an already-hidden node is a no-op.
	Hide(node Node)
}

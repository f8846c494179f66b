package domain

// Layer type constants define how a node participates in the portrait.
const (
	// LayerTypeSprite is a renderable layer, addressable by directives.
	LayerTypeSprite = "sprite"
	// LayerTypeGroup is a structural container. Groups organize the tree but
	// are not layer nodes: directives targeting them are rejected.
	LayerTypeGroup = "group"
)

// LayerDef is one node of a character's authored layer tree.
type LayerDef struct {
	// Name addresses the node within its parent. Names must be unique among
	// siblings and must not contain slashes or backslashes.
	Name string `json:"name" yaml:"name"`

	// Type is LayerTypeSprite or LayerTypeGroup. Empty means sprite.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`

	// Visible is the authored default visibility.
	Visible bool `json:"visible" yaml:"visible"`

	// Metadata allows for extensible key-value pairs (tint, offset hints...).
	// The engine never interprets these; they ride along for the host.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Children are nested nodes. A sprite may have children; sibling
	// enumeration for set-exclusive only ever spans one parent.
	Children []LayerDef `json:"children,omitempty" yaml:"children,omitempty"`
}

// Profile is a character's declarative portrait definition.
type Profile struct {
	Character string            `json:"character" yaml:"character"`
	Layers    []LayerDef        `json:"layers" yaml:"layers"`
	Metadata  map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Visibility maps a layer path to its visibility flag.
type Visibility map[string]bool

// Clone returns an independent copy.
func (v Visibility) Clone() Visibility {
	out := make(Visibility, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

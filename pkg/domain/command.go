package domain

// Op identifies the operation a directive segment requests on a layer.
type Op string

const (
	// OpShow makes the target layer visible.
	OpShow Op = "show"
	// OpHide makes the target layer invisible.
	OpHide Op = "hide"
	// OpSetExclusive shows the target layer and hides every other layer
	// sharing the same parent (radio-button semantics).
	OpSetExclusive Op = "set"
)

// Command is one parsed step of a layer directive.
//
// Commands are transient: the parser produces them from one comma-delimited
// segment of input and the evaluator consumes them immediately. They hold no
// resource ownership and are not cached across calls.
type Command struct {
	// Op is always one of OpShow, OpHide, OpSetExclusive. Segments with an
	// unrecognized operator never produce a Command.
	Op Op `json:"op"`

	// TargetPath is a slash-delimited relative path identifying a layer node.
	// It is non-empty after trimming; literal backslashes are stripped at
	// parse time. Uniqueness is not enforced at parse time: paths resolve
	// against whatever tree is supplied at evaluation time.
	TargetPath string `json:"target_path"`
}

package node

import "fmt"

// Style is a presentation hint for container nodes. It is consumed by the
// encode package when rendering and has no effect on equality or conversion.
type Style int

const (
	// DefaultStyle lets the encoder choose (block in YAML, flow in JSON).
	DefaultStyle Style = iota
	BlockStyle
	FlowStyle
)

func (s Style) String() string {
	switch s {
	case DefaultStyle:
		return "default"
	case BlockStyle:
		return "block"
	case FlowStyle:
		return "flow"
	default:
		return fmt.Sprintf("<unknown style %d>", int(s))
	}
}

// Style returns the presentation hint of the node. Scalars and Null nodes
// always report DefaultStyle.
func (n *Node) Style() Style {
	if n == nil {
		return DefaultStyle
	}
	return n.style
}

// SetStyle records a presentation hint on the node. It is a no-op on an
// invalid handle.
func (n *Node) SetStyle(s Style) {
	if n == nil {
		return
	}
	n.style = s
}

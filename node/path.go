package node

import (
	"strconv"
	"strings"
)

// Path returns a JSONPath-style string for this node's position in its
// tree, e.g. "$.servers[0].host". The root is "$". Map steps use the key's
// scalar text; a non-scalar key renders as its flattened content. Intended
// for diagnostics.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}
	if n.parent == nil {
		return "$"
	}
	p := n.parent
	switch p.kind {
	case MapKind:
		i := n.parentIndex
		var field string
		if i >= 0 && i < len(p.keys) {
			k := p.keys[i]
			if k.kind == ScalarKind {
				field = k.text
			} else {
				field = k.Content()
			}
		}
		return p.Path() + "." + field
	case SequenceKind:
		return p.Path() + "[" + strconv.Itoa(n.parentIndex) + "]"
	default:
		return p.Path()
	}
}

// GetPath navigates to a descendant by a path of dot-separated map fields
// and bracketed sequence indices, with or without the leading "$.":
//
//	n.GetPath("servers[0].host")
//
// It is read-only: a missing step reports false with no vivification.
// Fields containing '.' or '[' are not addressable through this form; walk
// with Get directly for those.
func (n *Node) GetPath(path string) (*Node, bool) {
	cur := n
	rest := strings.TrimPrefix(path, "$")
	rest = strings.TrimPrefix(rest, ".")
	for rest != "" {
		if cur == nil {
			return nil, false
		}
		var step string
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, false
			}
			idx, err := strconv.Atoi(rest[1:end])
			if err != nil {
				return nil, false
			}
			cur = cur.Get(idx)
			rest = strings.TrimPrefix(rest[end+1:], ".")
			continue
		default:
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				step, rest = rest, ""
			} else if rest[end] == '[' {
				step, rest = rest[:end], rest[end:]
			} else {
				step, rest = rest[:end], rest[end+1:]
			}
		}
		cur = cur.Get(step)
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// Root walks parent pointers to the top of the tree.
func (n *Node) Root() *Node {
	if n == nil {
		return nil
	}
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Parent returns the containing node, or an invalid handle at the root.
// When a node has been aliased into several trees the pointer tracks the
// most recent insertion.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

package node

import (
	"math"
	"strconv"
)

// Engine converts arbitrary Go values to and from node trees. The node
// package handles scalar kinds natively; an Engine extends Set, FromValue
// and the As helpers to structs and other composite Go types. The gomap
// package registers the default reflection engine on import.
type Engine interface {
	EncodeValue(v any) (*Node, error)
	DecodeValue(n *Node, out any) error
}

var engine Engine

// RegisterEngine installs the conversion engine used for Go values the node
// package does not handle natively.
func RegisterEngine(e Engine) {
	engine = e
}

// As decodes the node as a T, returning def when the node cannot be read as
// one. Decoding never panics and never mutates the node.
//
//	port := node.As(cfg.Get("port"), 8080)
func As[T any](n *Node, def T) T {
	v, ok := AsOptional[T](n)
	if !ok {
		return def
	}
	return v
}

// AsOptional decodes the node as a T, reporting false when it cannot: the
// node is Null or undefined, a scalar's text does not parse as T, or the
// node is a container where T wants a scalar. Non-scalar T values are
// delegated to the registered Engine.
func AsOptional[T any](n *Node) (T, bool) {
	var res T
	if n == nil {
		return res, false
	}
	switch p := any(&res).(type) {
	case **Node:
		*p = n
		return res, true
	case *string:
		if n.kind != ScalarKind {
			return res, false
		}
		*p = n.text
		return res, true
	case *bool:
		v, ok := n.scalarBool()
		if !ok {
			return res, false
		}
		*p = v
		return res, true
	case *int:
		v, ok := n.scalarInt(strconv.IntSize)
		if !ok {
			return res, false
		}
		*p = int(v)
		return res, true
	case *int8:
		v, ok := n.scalarInt(8)
		if !ok {
			return res, false
		}
		*p = int8(v)
		return res, true
	case *int16:
		v, ok := n.scalarInt(16)
		if !ok {
			return res, false
		}
		*p = int16(v)
		return res, true
	case *int32:
		v, ok := n.scalarInt(32)
		if !ok {
			return res, false
		}
		*p = int32(v)
		return res, true
	case *int64:
		v, ok := n.scalarInt(64)
		if !ok {
			return res, false
		}
		*p = v
		return res, true
	case *uint:
		v, ok := n.scalarUint(strconv.IntSize)
		if !ok {
			return res, false
		}
		*p = uint(v)
		return res, true
	case *uint8:
		v, ok := n.scalarUint(8)
		if !ok {
			return res, false
		}
		*p = uint8(v)
		return res, true
	case *uint16:
		v, ok := n.scalarUint(16)
		if !ok {
			return res, false
		}
		*p = uint16(v)
		return res, true
	case *uint32:
		v, ok := n.scalarUint(32)
		if !ok {
			return res, false
		}
		*p = uint32(v)
		return res, true
	case *uint64:
		v, ok := n.scalarUint(64)
		if !ok {
			return res, false
		}
		*p = v
		return res, true
	case *float32:
		v, ok := n.scalarFloat(32)
		if !ok {
			return res, false
		}
		*p = float32(v)
		return res, true
	case *float64:
		v, ok := n.scalarFloat(64)
		if !ok {
			return res, false
		}
		*p = v
		return res, true
	default:
		if engine == nil {
			return res, false
		}
		if err := engine.DecodeValue(n, &res); err != nil {
			return res, false
		}
		return res, true
	}
}

// CanConvert probes whether the node decodes as a T. It is side-effect free.
func CanConvert[T any](n *Node) bool {
	_, ok := AsOptional[T](n)
	return ok
}

func (n *Node) scalarBool() (bool, bool) {
	if n.kind != ScalarKind {
		return false, false
	}
	// only the canonical keywords; ParseBool also takes 1/0/t/f, which
	// would let numeric scalars masquerade as bools
	switch n.text {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

func (n *Node) scalarInt(bits int) (int64, bool) {
	if n.kind != ScalarKind {
		return 0, false
	}
	v, err := strconv.ParseInt(n.text, 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *Node) scalarUint(bits int) (uint64, bool) {
	if n.kind != ScalarKind {
		return 0, false
	}
	v, err := strconv.ParseUint(n.text, 10, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (n *Node) scalarFloat(bits int) (float64, bool) {
	if n.kind != ScalarKind {
		return 0, false
	}
	v, err := strconv.ParseFloat(n.text, bits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// scalarNumeric classifies a scalar's text for comparison: ints order before
// floats, both order before plain text.
func (n *Node) scalarNumeric() (i int64, f float64, sub int) {
	if v, err := strconv.ParseInt(n.text, 10, 64); err == nil {
		return v, 0, 0
	}
	if v, err := strconv.ParseFloat(n.text, 64); err == nil && !math.IsNaN(v) {
		return 0, v, 1
	}
	return 0, 0, 2
}

package gomap

import (
	"strconv"

	"github.com/treedoc-format/go-treedoc/node"
)

// Value projects a node tree onto plain Go values: nil, bool, int64,
// float64, string, []any and map[string]any. Scalar classification follows
// the scalar's text unless it is an explicit string. Map keys flatten to
// their text and duplicate keys collapse, last one wins; use the node API
// directly when duplicates or key order matter.
func Value(n *node.Node) any {
	switch n.Kind() {
	case node.UndefinedKind, node.NullKind:
		return nil
	case node.ScalarKind:
		return scalarValue(n)
	case node.SequenceKind:
		res := make([]any, 0, n.Size())
		it := n.Iter()
		for it.Next() {
			res = append(res, Value(it.Value()))
		}
		return res
	case node.MapKind:
		res := make(map[string]any, n.Size())
		it := n.Iter()
		for it.Next() {
			k, v := it.Entry()
			key := k.Scalar()
			if !k.IsScalar() {
				key = k.Content()
			}
			res[key] = Value(v)
		}
		return res
	}
	return nil
}

func scalarValue(n *node.Node) any {
	v := n.Scalar()
	if n.IsString() {
		return v
	}
	if b, err := strconv.ParseBool(v); err == nil && (v == "true" || v == "false") {
		return b
	}
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}

package node

import "iter"

// Iterator is a forward cursor over one container node's children. For a Map
// it surfaces the pair's key and value nodes; for a Sequence the key is a
// synthesized scalar holding the element's position. Traversal order is
// insertion order.
//
// The iterator snapshots the container's structural generation: when the
// container's shape changes after construction (push, insert, remove,
// vivification), Next fails fast and returns false instead of walking stale
// storage.
type Iterator struct {
	src *Node
	gen uint64
	pos int
	cur int
}

// Iter returns an iterator over the node's children. On a Null node the
// node is first converted to an empty Sequence, mirroring the
// auto-vivification of GetOrCreate; this is the one read-style call with a
// write effect. On a Scalar or invalid handle the iterator is empty.
func (n *Node) Iter() *Iterator {
	if n == nil {
		return &Iterator{}
	}
	if n.kind == NullKind {
		n.kind = SequenceKind
		n.gen++
	}
	switch n.kind {
	case SequenceKind, MapKind:
		return &Iterator{src: n, gen: n.gen, cur: -1}
	default:
		return &Iterator{}
	}
}

// Next advances to the next child, reporting whether one exists. It returns
// false once the children are exhausted or the source container has been
// structurally mutated since the iterator was built.
func (it *Iterator) Next() bool {
	if it.src == nil || it.gen != it.src.gen {
		return false
	}
	if it.pos >= len(it.src.vals) {
		return false
	}
	it.cur = it.pos
	it.pos++
	return true
}

// Key returns the key of the current pair for a Map source, or a synthesized
// scalar holding the current position for a Sequence source. It returns an
// invalid handle before the first Next or after exhaustion.
func (it *Iterator) Key() *Node {
	if !it.valid() {
		return nil
	}
	if it.src.kind == MapKind {
		return it.src.keys[it.cur]
	}
	return FromInt(int64(it.cur))
}

// Value returns the current child node: the pair's value for a Map source,
// the element itself for a Sequence source.
func (it *Iterator) Value() *Node {
	if !it.valid() {
		return nil
	}
	return it.src.vals[it.cur]
}

// Entry returns Key and Value together.
func (it *Iterator) Entry() (*Node, *Node) {
	return it.Key(), it.Value()
}

func (it *Iterator) valid() bool {
	return it.src != nil && it.gen == it.src.gen && it.cur >= 0 && it.cur < len(it.src.vals)
}

// All returns a range-over-func view of the node's children in the same
// terms as Iter: key (or position scalar) and value per child.
//
//	for k, v := range n.All() {
//	    ...
//	}
func (n *Node) All() iter.Seq2[*Node, *Node] {
	return func(yield func(*Node, *Node) bool) {
		it := n.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

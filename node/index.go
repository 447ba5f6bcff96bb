package node

import "strconv"

// Get returns the child at key without mutating the node: the value for a
// matching map key, or the element at an integer index of a sequence. It
// returns an invalid handle when the key is absent or the node's kind is not
// indexable. Get never vivifies; use GetOrCreate for the writing form.
func (n *Node) Get(key any) *Node {
	switch n.Kind() {
	case MapKind:
		k, ok := keyNode(key)
		if !ok {
			return nil
		}
		for i := range n.keys {
			if Compare(n.keys[i], k) == 0 {
				return n.vals[i]
			}
		}
		return nil
	case SequenceKind:
		idx, ok := asIndex(key)
		if !ok || idx < 0 || idx >= len(n.vals) {
			return nil
		}
		return n.vals[idx]
	default:
		return nil
	}
}

// GetOrCreate returns the child at key, creating structure as needed: a Null
// node becomes a Map, an absent map key is appended with a Null value, and a
// sequence index past the end pads the sequence with Nulls through that
// index. The returned handle aliases into this node's storage, so mere
// lookup of a missing key grows the container.
//
// On a Scalar, or when the key cannot address the node's kind, it returns an
// invalid handle and emits a diagnostic.
func (n *Node) GetOrCreate(key any) *Node {
	if n == nil {
		Diagf("GetOrCreate: invalid handle\n")
		return nil
	}
	if n.kind == NullKind {
		n.kind = MapKind
		n.gen++
	}
	switch n.kind {
	case MapKind:
		k, ok := keyNode(key)
		if !ok {
			Diagf("GetOrCreate: cannot encode key %v\n", key)
			return nil
		}
		for i := range n.keys {
			if Compare(n.keys[i], k) == 0 {
				return n.vals[i]
			}
		}
		val := New()
		n.appendPair(k, val)
		return val
	case SequenceKind:
		idx, ok := asIndex(key)
		if !ok || idx < 0 {
			Diagf("GetOrCreate: key %v is not a sequence index\n", key)
			return nil
		}
		if idx >= len(n.vals) {
			for len(n.vals) <= idx {
				pad := New()
				pad.parent = n
				pad.parentIndex = len(n.vals)
				n.vals = append(n.vals, pad)
			}
			n.gen++
		}
		return n.vals[idx]
	default:
		Diagf("GetOrCreate: cannot index %s node\n", n.kind)
		return nil
	}
}

// Push appends the encoded value to the node, converting a Null node to a
// Sequence first. Pushing onto a Scalar or Map is a no-op with a diagnostic.
func (n *Node) Push(v any) bool {
	c, ok := encodeValue(v)
	if !ok {
		Diagf("Push: cannot encode %T\n", v)
		return false
	}
	return n.PushNode(c)
}

// PushNode appends the given node itself as an element, so the child aliases
// into this tree.
func (n *Node) PushNode(c *Node) bool {
	if n == nil {
		Diagf("Push: invalid handle\n")
		return false
	}
	if c == nil {
		Diagf("Push: invalid element handle\n")
		return false
	}
	if n.kind == NullKind {
		n.kind = SequenceKind
	}
	if n.kind != SequenceKind {
		Diagf("Push: cannot push onto %s node\n", n.kind)
		return false
	}
	c.parent = n
	c.parentIndex = len(n.vals)
	n.vals = append(n.vals, c)
	n.gen++
	return true
}

// ForceInsert appends the key/value pair unconditionally, converting a Null
// node to a Map first. No lookup is performed: inserting an existing key
// yields a duplicate entry. Inserting into a Scalar or Sequence is a no-op
// with a diagnostic.
func (n *Node) ForceInsert(key, value any) bool {
	if n == nil {
		Diagf("ForceInsert: invalid handle\n")
		return false
	}
	k, ok := keyNode(key)
	if !ok {
		Diagf("ForceInsert: cannot encode key %v\n", key)
		return false
	}
	v, ok := valNode(value)
	if !ok {
		Diagf("ForceInsert: cannot encode value %T\n", value)
		return false
	}
	if n.kind == NullKind {
		n.kind = MapKind
	}
	if n.kind != MapKind {
		Diagf("ForceInsert: cannot insert into %s node\n", n.kind)
		return false
	}
	n.appendPair(k, v)
	return true
}

// Remove deletes the map pair or sequence element at key. It reports whether
// a removal occurred; an absent key, or a node that is not a container,
// leaves the node unchanged.
func (n *Node) Remove(key any) bool {
	switch n.Kind() {
	case MapKind:
		k, ok := keyNode(key)
		if !ok {
			return false
		}
		for i := range n.keys {
			if Compare(n.keys[i], k) != 0 {
				continue
			}
			n.keys[i].parent = nil
			n.vals[i].parent = nil
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			n.vals = append(n.vals[:i], n.vals[i+1:]...)
			n.reindex(i)
			n.gen++
			return true
		}
		return false
	case SequenceKind:
		idx, ok := asIndex(key)
		if !ok || idx < 0 || idx >= len(n.vals) {
			return false
		}
		n.vals[idx].parent = nil
		n.vals = append(n.vals[:idx], n.vals[idx+1:]...)
		n.reindex(idx)
		n.gen++
		return true
	default:
		return false
	}
}

func (n *Node) appendPair(k, v *Node) {
	i := len(n.vals)
	k.parent = n
	k.parentIndex = i
	v.parent = n
	v.parentIndex = i
	n.keys = append(n.keys, k)
	n.vals = append(n.vals, v)
	n.gen++
}

func (n *Node) reindex(from int) {
	for i := from; i < len(n.vals); i++ {
		n.vals[i].parentIndex = i
		if n.keys != nil {
			n.keys[i].parentIndex = i
		}
	}
}

// keyNode normalizes a lookup key to a node. A *Node key is used as is (any
// node may key a map); other values go through the value encoder.
func keyNode(key any) (*Node, bool) {
	if k, ok := key.(*Node); ok {
		return k, k != nil
	}
	return encodeValue(key)
}

func valNode(value any) (*Node, bool) {
	if v, ok := value.(*Node); ok {
		if v == nil {
			return nil, false
		}
		return v, true
	}
	return encodeValue(value)
}

// asIndex reports whether key can address a sequence position.
func asIndex(key any) (int, bool) {
	switch x := key.(type) {
	case int:
		return x, true
	case int8:
		return int(x), true
	case int16:
		return int(x), true
	case int32:
		return int(x), true
	case int64:
		return int(x), true
	case uint:
		return int(x), true
	case uint8:
		return int(x), true
	case uint16:
		return int(x), true
	case uint32:
		return int(x), true
	case uint64:
		return int(x), true
	case string:
		i, err := strconv.Atoi(x)
		if err != nil {
			return 0, false
		}
		return i, true
	case *Node:
		if x.Kind() != ScalarKind {
			return 0, false
		}
		i, err := strconv.Atoi(x.text)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

package node

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Node is a single value in a document tree: Null, Scalar, Sequence or Map.
//
// A *Node is a handle. Copying a handle (b := a) makes an alias: both handles
// see mutations made through either one. Children returned by Get,
// GetOrCreate and iteration are handles into the parent's storage, so
// mutating a child mutates the tree. A nil *Node is a valid, inert handle
// whose Kind is UndefinedKind; every method is safe to call on it.
//
// Nodes are not safe for concurrent mutation. Callers sharing a tree across
// goroutines must serialize access themselves.
type Node struct {
	parent      *Node
	parentIndex int

	kind  Kind
	style Style

	// scalar payload: canonical text plus whether the value originated as
	// an explicit string (a quoting hint for the encoder, ignored by
	// conversion).
	text     string
	stringly bool

	// container payload: keys is populated for maps only and always has
	// the same length as vals there. Map entries are an ordered list of
	// pairs; duplicate keys are permitted.
	keys []*Node
	vals []*Node

	// gen counts structural mutations, letting iterators fail fast when
	// the container changes shape under them.
	gen uint64
}

// KeyVal is a single map entry.
type KeyVal struct {
	Key *Node
	Val *Node
}

// New returns a fresh Null node.
func New() *Node {
	return &Node{}
}

// NewKind returns an empty node of the given kind. UndefinedKind yields a
// nil handle.
func NewKind(k Kind) *Node {
	switch k {
	case UndefinedKind:
		return nil
	case NullKind, ScalarKind, SequenceKind, MapKind:
		return &Node{kind: k}
	default:
		Diagf("NewKind: unrecognized kind %d\n", int(k))
		return nil
	}
}

// FromValue encodes a Go value into a fresh node. Scalar values and
// container-like values (slices, maps, and anything the registered Engine
// understands) are supported. On an unencodable value it returns a nil
// handle and emits a diagnostic.
func FromValue(v any) *Node {
	n, ok := encodeValue(v)
	if !ok {
		Diagf("FromValue: cannot encode %T\n", v)
		return nil
	}
	return n
}

func FromString(v string) *Node {
	return &Node{kind: ScalarKind, text: v, stringly: true}
}

func FromInt(v int64) *Node {
	return &Node{kind: ScalarKind, text: strconv.FormatInt(v, 10)}
}

func FromFloat(v float64) *Node {
	return &Node{kind: ScalarKind, text: strconv.FormatFloat(v, 'g', -1, 64)}
}

func FromBool(v bool) *Node {
	return &Node{kind: ScalarKind, text: strconv.FormatBool(v)}
}

// FromSlice builds a sequence holding the given nodes. The nodes themselves
// become children (aliased, not copied).
func FromSlice(vals []*Node) *Node {
	res := &Node{kind: SequenceKind}
	res.vals = make([]*Node, len(vals))
	for i, v := range vals {
		if v == nil {
			v = New()
		}
		v.parent = res
		v.parentIndex = i
		res.vals[i] = v
	}
	return res
}

// FromMap builds a map node from a Go map, with entries ordered by key.
func FromMap(m map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(m))
	kvs := make([]KeyVal, len(keys))
	for i, k := range keys {
		kvs[i] = KeyVal{Key: FromString(k), Val: m[k]}
	}
	return FromKeyVals(kvs)
}

// FromKeyVals builds a map node from ordered key/value pairs. Duplicate keys
// are kept as given.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{kind: MapKind}
	res.keys = make([]*Node, len(kvs))
	res.vals = make([]*Node, len(kvs))
	for i := range kvs {
		kv := kvs[i]
		if kv.Key == nil {
			kv.Key = New()
		}
		if kv.Val == nil {
			kv.Val = New()
		}
		kv.Key.parent = res
		kv.Key.parentIndex = i
		kv.Val.parent = res
		kv.Val.parentIndex = i
		res.keys[i] = kv.Key
		res.vals[i] = kv.Val
	}
	return res
}

// Kind reports the node's shape. A nil handle reports UndefinedKind.
func (n *Node) Kind() Kind {
	if n == nil {
		return UndefinedKind
	}
	return n.kind
}

func (n *Node) IsDefined() bool  { return n != nil }
func (n *Node) IsNull() bool     { return n.Kind() == NullKind }
func (n *Node) IsScalar() bool   { return n.Kind() == ScalarKind }
func (n *Node) IsSequence() bool { return n.Kind() == SequenceKind }
func (n *Node) IsMap() bool      { return n.Kind() == MapKind }

// HasValue reports whether the node is defined and not Null.
func (n *Node) HasValue() bool {
	k := n.Kind()
	return k != UndefinedKind && k != NullKind
}

// Scalar returns the raw textual form of a Scalar node, and "" for every
// other kind.
func (n *Node) Scalar() string {
	if n.Kind() != ScalarKind {
		return ""
	}
	return n.text
}

// IsString reports whether the node is a Scalar that originated as an
// explicit string (as opposed to a number or boolean). Encoders use it to
// decide quoting; conversion ignores it.
func (n *Node) IsString() bool {
	return n.Kind() == ScalarKind && n.stringly
}

// Size returns the element count of a Sequence or the pair count of a Map,
// and 0 for every other kind.
func (n *Node) Size() int {
	switch n.Kind() {
	case SequenceKind, MapKind:
		return len(n.vals)
	default:
		return 0
	}
}

// Set re-encodes the node's contents in place from a Go value; every alias
// of this handle observes the change. If the value cannot be encoded the
// node keeps its prior contents, a diagnostic is emitted and Set reports
// false. Set never panics.
//
// Setting a *Node copies that node's contents (see Reset); rebinding a
// handle variable is plain Go assignment.
func (n *Node) Set(v any) bool {
	if n == nil {
		Diagf("Set: invalid handle, dropping value %v\n", v)
		return false
	}
	tmp, ok := encodeValue(v)
	if !ok {
		Diagf("Set: cannot encode %T, node unchanged\n", v)
		return false
	}
	n.adopt(tmp)
	return true
}

// Reset overwrites the node's contents with a copy of other's contents, or
// clears it to Null when no argument is given. It reports false only on an
// invalid handle.
func (n *Node) Reset(other ...*Node) bool {
	if n == nil {
		Diagf("Reset: invalid handle\n")
		return false
	}
	var src *Node
	if len(other) > 0 {
		src = other[0]
	}
	if src == nil {
		n.adopt(New())
		return true
	}
	n.adopt(src.Clone())
	return true
}

// Clone returns a deep structural copy of the node. An invalid handle
// clones to an invalid handle.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{
		kind:     n.kind,
		style:    n.style,
		text:     n.text,
		stringly: n.stringly,
	}
	if n.keys != nil {
		res.keys = make([]*Node, len(n.keys))
		for i, k := range n.keys {
			ck := k.Clone()
			ck.parent = res
			ck.parentIndex = i
			res.keys[i] = ck
		}
	}
	if n.vals != nil {
		res.vals = make([]*Node, len(n.vals))
		for i, v := range n.vals {
			cv := v.Clone()
			cv.parent = res
			cv.parentIndex = i
			res.vals[i] = cv
		}
	}
	return res
}

// adopt moves src's payload into n, re-parenting children. The receiver's
// position in its own parent is untouched.
func (n *Node) adopt(src *Node) {
	n.kind = src.kind
	n.style = src.style
	n.text = src.text
	n.stringly = src.stringly
	n.keys = src.keys
	n.vals = src.vals
	for i, k := range n.keys {
		k.parent = n
		k.parentIndex = i
	}
	for i, v := range n.vals {
		v.parent = n
		v.parentIndex = i
	}
	n.gen++
}

// encodeValue builds a detached node from a Go value. It reports false when
// the value cannot be encoded, leaving the caller's node untouched.
func encodeValue(v any) (*Node, bool) {
	switch x := v.(type) {
	case nil:
		return New(), true
	case *Node:
		if x == nil {
			return nil, false
		}
		return x.Clone(), true
	case bool:
		return FromBool(x), true
	case string:
		return FromString(x), true
	case []byte:
		return FromString(string(x)), true
	case int:
		return FromInt(int64(x)), true
	case int8:
		return FromInt(int64(x)), true
	case int16:
		return FromInt(int64(x)), true
	case int32:
		return FromInt(int64(x)), true
	case int64:
		return FromInt(x), true
	case uint:
		return fromUint(uint64(x)), true
	case uint8:
		return FromInt(int64(x)), true
	case uint16:
		return FromInt(int64(x)), true
	case uint32:
		return FromInt(int64(x)), true
	case uint64:
		return fromUint(x), true
	case float32:
		return &Node{kind: ScalarKind, text: strconv.FormatFloat(float64(x), 'g', -1, 32)}, true
	case float64:
		return FromFloat(x), true
	case []*Node:
		return FromSlice(x), true
	case map[string]*Node:
		return FromMap(x), true
	case []KeyVal:
		return FromKeyVals(kvClones(x)), true
	case []any:
		res := &Node{kind: SequenceKind}
		for _, e := range x {
			c, ok := encodeValue(e)
			if !ok {
				return nil, false
			}
			c.parent = res
			c.parentIndex = len(res.vals)
			res.vals = append(res.vals, c)
		}
		return res, true
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]KeyVal, 0, len(keys))
		for _, k := range keys {
			c, ok := encodeValue(x[k])
			if !ok {
				return nil, false
			}
			kvs = append(kvs, KeyVal{Key: FromString(k), Val: c})
		}
		return FromKeyVals(kvs), true
	default:
		if engine == nil {
			return nil, false
		}
		enc, err := engine.EncodeValue(v)
		if err != nil || enc == nil {
			return nil, false
		}
		return enc, true
	}
}

func kvClones(kvs []KeyVal) []KeyVal {
	res := make([]KeyVal, len(kvs))
	for i, kv := range kvs {
		res[i] = KeyVal{Key: kv.Key.Clone(), Val: kv.Val.Clone()}
	}
	return res
}

func fromUint(v uint64) *Node {
	return &Node{kind: ScalarKind, text: strconv.FormatUint(v, 10)}
}

// Content returns a flattened textual rendering of the node, for
// diagnostics. It is not a round-trip form; use the encode package for
// serialization.
func (n *Node) Content() string {
	var b strings.Builder
	n.contentTo(&b)
	return b.String()
}

func (n *Node) contentTo(b *strings.Builder) {
	switch n.Kind() {
	case UndefinedKind:
	case NullKind:
		b.WriteString("null")
	case ScalarKind:
		b.WriteString(n.text)
	case SequenceKind:
		b.WriteByte('[')
		for i, v := range n.vals {
			if i > 0 {
				b.WriteString(", ")
			}
			v.contentTo(b)
		}
		b.WriteByte(']')
	case MapKind:
		b.WriteByte('{')
		for i := range n.vals {
			if i > 0 {
				b.WriteString(", ")
			}
			n.keys[i].contentTo(b)
			b.WriteString(": ")
			n.vals[i].contentTo(b)
		}
		b.WriteByte('}')
	}
}

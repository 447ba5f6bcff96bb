package node

import "fmt"

// Kind is the shape of a Node. A Node has exactly one Kind at any time.
type Kind int

const (
	NullKind Kind = iota
	ScalarKind
	SequenceKind
	MapKind
	// UndefinedKind is the kind reported by an invalid handle (a nil *Node),
	// never the kind of an allocated node.
	UndefinedKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NullKind:      "Null",
		ScalarKind:    "Scalar",
		SequenceKind:  "Sequence",
		MapKind:       "Map",
		UndefinedKind: "Undefined",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":      NullKind,
		"Scalar":    ScalarKind,
		"Sequence":  SequenceKind,
		"Map":       MapKind,
		"Undefined": UndefinedKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		ScalarKind,
		SequenceKind,
		MapKind,
		UndefinedKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case SequenceKind, MapKind:
		return false
	default:
		return true
	}
}

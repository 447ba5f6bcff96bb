package node

import (
	"cmp"
	"strings"
)

// Compare returns an integer giving a total order over nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Aliasing and Style never participate: two structurally equal trees compare
// equal regardless of sharing or presentation hints.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	rankA := rank(a.Kind())
	rankB := rank(b.Kind())
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Kind() {
	case ScalarKind:
		return compareScalars(a, b)
	case SequenceKind:
		return compareSequences(a, b)
	case MapKind:
		return compareMaps(a, b)
	case UndefinedKind, NullKind:
		return 0
	}
	return 0
}

// Is reports structural equality with other, in the sense of Compare.
func (n *Node) Is(other *Node) bool {
	return Compare(n, other) == 0
}

// rank returns the sorting rank of a kind.
// Order: Undefined < Null < Scalar < Sequence < Map
func rank(k Kind) int {
	switch k {
	case UndefinedKind:
		return 0
	case NullKind:
		return 1
	case ScalarKind:
		return 2
	case SequenceKind:
		return 3
	case MapKind:
		return 4
	}
	return 100
}

func compareScalars(a, b *Node) int {
	// Sub-rank: Int < Float < Text
	aI, aF, subA := a.scalarNumeric()
	bI, bF, subB := b.scalarNumeric()
	if subA != subB {
		return cmp.Compare(subA, subB)
	}
	switch subA {
	case 0:
		return cmp.Compare(aI, bI)
	case 1:
		return cmp.Compare(aF, bF)
	default:
		return strings.Compare(a.text, b.text)
	}
}

func compareSequences(a, b *Node) int {
	lenA := len(a.vals)
	lenB := len(b.vals)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Node) int {
	lenA := len(a.keys)
	lenB := len(b.keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.vals[i], b.vals[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

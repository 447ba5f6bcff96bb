package node

import (
	"testing"
)

func TestIterMapOrder(t *testing.T) {
	m := New()
	m.GetOrCreate("b").Set(1)
	m.GetOrCreate("a").Set(2)
	m.GetOrCreate("c").Set(3)
	var keys []string
	var vals []int
	for it := m.Iter(); it.Next(); {
		keys = append(keys, As[string](it.Key(), "?"))
		vals = append(vals, As[int](it.Value(), -1))
	}
	// insertion order, not sorted
	want := []string{"b", "a", "c"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys %v want %v", keys, want)
		}
	}
	if vals[0] != 1 || vals[1] != 2 || vals[2] != 3 {
		t.Fatalf("vals %v", vals)
	}
}

func TestIterSequenceKeys(t *testing.T) {
	s := FromValue([]any{"x", "y"})
	i := 0
	for it := s.Iter(); it.Next(); i++ {
		if k := As[int](it.Key(), -1); k != i {
			t.Fatalf("position %d has key %d", i, k)
		}
	}
	if i != 2 {
		t.Fatalf("iterated %d elements", i)
	}
}

func TestIterScalarEmpty(t *testing.T) {
	n := FromInt(3)
	if n.Iter().Next() {
		t.Fatal("scalar iterated")
	}
	if n.Kind() != ScalarKind {
		t.Fatalf("Iter changed the scalar to %s", n.Kind())
	}
}

func TestIterNullVivifies(t *testing.T) {
	n := New()
	it := n.Iter()
	if it.Next() {
		t.Fatal("empty sequence iterated")
	}
	if n.Kind() != SequenceKind {
		t.Fatalf("Iter left kind %s", n.Kind())
	}
}

func TestIterInvalidation(t *testing.T) {
	s := FromValue([]any{1, 2, 3})
	it := s.Iter()
	if !it.Next() {
		t.Fatal("no first element")
	}
	s.Push(4)
	if it.Next() {
		t.Fatal("iterator survived a structural change")
	}
	// value mutation through a handle does not invalidate
	it = s.Iter()
	if !it.Next() {
		t.Fatal("no first element")
	}
	it.Value().Set(99)
	if !it.Next() {
		t.Fatal("iterator died on a value change")
	}
}

func TestAll(t *testing.T) {
	m := New()
	m.ForceInsert("a", 1)
	m.ForceInsert("b", 2)
	sum := 0
	for _, v := range m.All() {
		sum += As[int](v, 0)
	}
	if sum != 3 {
		t.Fatalf("sum %d", sum)
	}
}

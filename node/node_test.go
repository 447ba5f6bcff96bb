package node

import (
	"testing"
)

func TestFromValue(t *testing.T) {
	type fvTest struct {
		in   any
		kind Kind
		text string
	}
	fvs := []fvTest{
		{in: nil, kind: NullKind},
		{in: true, kind: ScalarKind, text: "true"},
		{in: false, kind: ScalarKind, text: "false"},
		{in: 22, kind: ScalarKind, text: "22"},
		{in: int8(-3), kind: ScalarKind, text: "-3"},
		{in: uint64(18446744073709551615), kind: ScalarKind, text: "18446744073709551615"},
		{in: 1.5, kind: ScalarKind, text: "1.5"},
		{in: "hello", kind: ScalarKind, text: "hello"},
		{in: []byte("raw"), kind: ScalarKind, text: "raw"},
		{in: []any{1, 2}, kind: SequenceKind},
		{in: map[string]any{"a": 1}, kind: MapKind},
	}
	for i, fv := range fvs {
		n := FromValue(fv.in)
		if n.Kind() != fv.kind {
			t.Errorf("test %d: got kind %s want %s", i, n.Kind(), fv.kind)
			continue
		}
		if fv.kind == ScalarKind && n.Scalar() != fv.text {
			t.Errorf("test %d: got scalar %q want %q", i, n.Scalar(), fv.text)
		}
	}
}

func TestFromValueString(t *testing.T) {
	s := FromValue("true")
	if !s.IsString() {
		t.Errorf("string-typed value lost its string hint")
	}
	b := FromValue(true)
	if b.IsString() {
		t.Errorf("bool value claims a string hint")
	}
	if s.Scalar() != b.Scalar() {
		t.Errorf("canonical text differs: %q vs %q", s.Scalar(), b.Scalar())
	}
}

func TestUndefinedHandle(t *testing.T) {
	var n *Node
	if n.IsDefined() {
		t.Errorf("nil handle is defined")
	}
	if n.Kind() != UndefinedKind {
		t.Errorf("nil handle has kind %s", n.Kind())
	}
	if n.Size() != 0 {
		t.Errorf("nil handle has size %d", n.Size())
	}
	if n.Get("a") != nil {
		t.Errorf("nil handle resolved a key")
	}
	if n.Set(1) {
		t.Errorf("nil handle accepted a value")
	}
	it := n.Iter()
	if it.Next() {
		t.Errorf("nil handle iterated")
	}
}

func TestSet(t *testing.T) {
	n := New()
	if !n.Set(42) {
		t.Fatal("Set(42) failed")
	}
	if n.Kind() != ScalarKind || n.Scalar() != "42" {
		t.Fatalf("got %s %q", n.Kind(), n.Scalar())
	}
	if !n.Set([]any{"a", "b"}) {
		t.Fatal("Set(slice) failed")
	}
	if n.Kind() != SequenceKind || n.Size() != 2 {
		t.Fatalf("got %s size %d", n.Kind(), n.Size())
	}
}

func TestSetFailureLeavesValue(t *testing.T) {
	n := FromInt(7)
	if n.Set(func() {}) {
		t.Fatal("Set accepted a func")
	}
	if n.Kind() != ScalarKind || n.Scalar() != "7" {
		t.Fatalf("failed Set changed the node: %s %q", n.Kind(), n.Scalar())
	}
}

func TestAliasing(t *testing.T) {
	a := NewKind(SequenceKind)
	b := a
	a.Push(1)
	a.Push(2)
	if b.Size() != 2 {
		t.Fatalf("copied handle sees size %d", b.Size())
	}
	m := FromValue(map[string]any{"k": []any{1}})
	seq := m.Get("k")
	seq.Push(2)
	if m.Get("k").Size() != 2 {
		t.Fatalf("mutation through child handle not visible: size %d", m.Get("k").Size())
	}
}

func TestReset(t *testing.T) {
	n := FromValue(map[string]any{"a": 1})
	if !n.Reset() {
		t.Fatal("Reset() failed")
	}
	if !n.IsNull() {
		t.Fatalf("Reset() left kind %s", n.Kind())
	}
	src := FromValue([]any{1, 2, 3})
	if !n.Reset(src) {
		t.Fatal("Reset(src) failed")
	}
	if n.Kind() != SequenceKind || n.Size() != 3 {
		t.Fatalf("got %s size %d", n.Kind(), n.Size())
	}
	// the source must stay independent
	n.Push(4)
	if src.Size() != 3 {
		t.Fatalf("Reset shared storage with its source")
	}
}

func TestClone(t *testing.T) {
	orig := FromValue(map[string]any{"a": []any{1, 2}})
	cp := orig.Clone()
	if Compare(orig, cp) != 0 {
		t.Fatal("clone differs from original")
	}
	cp.Get("a").Push(3)
	if orig.Get("a").Size() != 2 {
		t.Fatal("clone shares storage with original")
	}
}

func TestContent(t *testing.T) {
	type cTest struct {
		n *Node
		s string
	}
	cts := []cTest{
		{n: nil, s: ""},
		{n: New(), s: "null"},
		{n: FromString("hi"), s: "hi"},
		{n: FromValue([]any{1, 2}), s: "[1, 2]"},
		{n: FromValue(map[string]any{"a": 1}), s: "{a: 1}"},
	}
	for i, ct := range cts {
		if got := ct.n.Content(); got != ct.s {
			t.Errorf("test %d: got %q want %q", i, got, ct.s)
		}
	}
}

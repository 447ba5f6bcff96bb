package node

import (
	"testing"
)

func TestAsInt(t *testing.T) {
	type intTest struct {
		n   *Node
		ok  bool
		val int
	}
	its := []intTest{
		{n: FromInt(22), ok: true, val: 22},
		{n: FromString("22"), ok: true, val: 22},
		{n: FromString("-7"), ok: true, val: -7},
		{n: FromString("hello")},
		{n: FromString("1.5")},
		{n: FromBool(true)},
		{n: New()},
		{n: nil},
		{n: FromValue([]any{1})},
	}
	for i, it := range its {
		v, ok := AsOptional[int](it.n)
		if ok != it.ok {
			t.Errorf("test %d: ok=%v want %v", i, ok, it.ok)
			continue
		}
		if ok && v != it.val {
			t.Errorf("test %d: got %d want %d", i, v, it.val)
		}
	}
}

func TestAsDefault(t *testing.T) {
	if v := As[int](FromString("hello"), 42); v != 42 {
		t.Fatalf("got %d want the default", v)
	}
	if v := As[int](FromInt(3), 42); v != 3 {
		t.Fatalf("got %d want 3", v)
	}
	if v := As[string](nil, "fallback"); v != "fallback" {
		t.Fatalf("got %q want the default", v)
	}
}

func TestAsBool(t *testing.T) {
	if v, ok := AsOptional[bool](FromBool(true)); !ok || !v {
		t.Fatalf("got %v %v", v, ok)
	}
	if v, ok := AsOptional[bool](FromString("false")); !ok || v {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := AsOptional[bool](FromInt(1)); ok {
		t.Fatal("integer converted to bool")
	}
}

func TestAsFloat(t *testing.T) {
	if v, ok := AsOptional[float64](FromFloat(1.5)); !ok || v != 1.5 {
		t.Fatalf("got %v %v", v, ok)
	}
	// integers widen to float
	if v, ok := AsOptional[float64](FromInt(2)); !ok || v != 2 {
		t.Fatalf("got %v %v", v, ok)
	}
	if v, ok := AsOptional[float32](FromString("0.25")); !ok || v != 0.25 {
		t.Fatalf("got %v %v", v, ok)
	}
}

func TestAsString(t *testing.T) {
	// any scalar converts to its text
	if v, ok := AsOptional[string](FromInt(3)); !ok || v != "3" {
		t.Fatalf("got %q %v", v, ok)
	}
	if v, ok := AsOptional[string](FromBool(true)); !ok || v != "true" {
		t.Fatalf("got %q %v", v, ok)
	}
	if _, ok := AsOptional[string](FromValue([]any{1})); ok {
		t.Fatal("sequence converted to string")
	}
}

func TestAsUintRange(t *testing.T) {
	if _, ok := AsOptional[uint8](FromInt(300)); ok {
		t.Fatal("300 fit in a uint8")
	}
	if v, ok := AsOptional[uint8](FromInt(255)); !ok || v != 255 {
		t.Fatalf("got %v %v", v, ok)
	}
	if _, ok := AsOptional[uint](FromInt(-1)); ok {
		t.Fatal("-1 fit in a uint")
	}
}

func TestAsHandle(t *testing.T) {
	n := FromInt(1)
	if v, ok := AsOptional[*Node](n); !ok || v != n {
		t.Fatal("handle conversion is not the identity")
	}
}

func TestCanConvert(t *testing.T) {
	n := FromString("22")
	if !CanConvert[int](n) {
		t.Fatal("22 cannot convert to int")
	}
	if !CanConvert[string](n) {
		t.Fatal("22 cannot convert to string")
	}
	if CanConvert[bool](n) {
		t.Fatal("22 converted to bool")
	}
	// probing must not mutate
	if n.Scalar() != "22" || n.Kind() != ScalarKind {
		t.Fatal("CanConvert mutated the node")
	}
}

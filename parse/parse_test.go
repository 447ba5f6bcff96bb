package parse

import (
	"testing"

	"github.com/treedoc-format/go-treedoc/node"
)

func TestParseScalars(t *testing.T) {
	type scalarTest struct {
		in    string
		kind  node.Kind
		text  string
		isStr bool
	}
	sts := []scalarTest{
		{in: `null`, kind: node.NullKind},
		{in: ``, kind: node.NullKind},
		{in: `true`, kind: node.ScalarKind, text: "true"},
		{in: `22`, kind: node.ScalarKind, text: "22"},
		{in: `-3`, kind: node.ScalarKind, text: "-3"},
		{in: `1.5`, kind: node.ScalarKind, text: "1.5"},
		{in: `hello`, kind: node.ScalarKind, text: "hello", isStr: true},
		{in: `"quoted"`, kind: node.ScalarKind, text: "quoted", isStr: true},
		{in: `"22"`, kind: node.ScalarKind, text: "22", isStr: true},
	}
	for i, st := range sts {
		n, err := ParseString(st.in)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if n.Kind() != st.kind {
			t.Errorf("test %d: kind %s want %s", i, n.Kind(), st.kind)
			continue
		}
		if st.kind != node.ScalarKind {
			continue
		}
		if n.Scalar() != st.text {
			t.Errorf("test %d: scalar %q want %q", i, n.Scalar(), st.text)
		}
		if n.IsString() != st.isStr {
			t.Errorf("test %d: IsString %v want %v", i, n.IsString(), st.isStr)
		}
	}
}

func TestParseMapOrder(t *testing.T) {
	n, err := ParseString("b: 1\na: 2\nc: 3\n")
	if err != nil {
		t.Fatal(err)
	}
	var keys []string
	for k := range n.All() {
		keys = append(keys, k.Scalar())
	}
	want := []string{"b", "a", "c"}
	if len(keys) != len(want) {
		t.Fatalf("got keys %v", keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("got keys %v want %v", keys, want)
		}
	}
}

func TestParseDuplicateKeys(t *testing.T) {
	n, err := ParseString("k: 1\nk: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	if n.Size() != 2 {
		t.Fatalf("size %d want 2", n.Size())
	}
	if got := node.As[int](n.Get("k"), -1); got != 1 {
		t.Fatalf("first entry %d want 1", got)
	}
}

func TestParseStyles(t *testing.T) {
	n, err := ParseString("a: [1, 2]\nb:\n  - 3\n")
	if err != nil {
		t.Fatal(err)
	}
	if n.Style() != node.BlockStyle {
		t.Errorf("root style %s", n.Style())
	}
	if n.Get("a").Style() != node.FlowStyle {
		t.Errorf("flow sequence style %s", n.Get("a").Style())
	}
	if n.Get("b").Style() != node.BlockStyle {
		t.Errorf("block sequence style %s", n.Get("b").Style())
	}
}

func TestParseAnchors(t *testing.T) {
	n, err := ParseString("base: &b\n  x: 1\nother: *b\n")
	if err != nil {
		t.Fatal(err)
	}
	base := n.Get("base")
	other := n.Get("other")
	if base != other {
		t.Fatal("alias is not the same handle")
	}
	base.GetOrCreate("y").Set(2)
	if node.As[int](other.Get("y"), -1) != 2 {
		t.Fatal("mutation through one alias not seen through the other")
	}
}

func TestParseAll(t *testing.T) {
	docs, err := ParseAll([]byte("a: 1\n---\nb: 2\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents", len(docs))
	}
	if docs[0].Get("a") == nil || docs[1].Get("b") == nil {
		t.Fatal("document contents misplaced")
	}
}

func TestParseJSON(t *testing.T) {
	n, err := Parse([]byte(`{"name": "alice", "tags": [1, 2], "ok": true}`), ParseJSON())
	if err != nil {
		t.Fatal(err)
	}
	if node.As[string](n.Get("name"), "") != "alice" {
		t.Fatalf("name %q", n.Get("name").Scalar())
	}
	if n.Get("tags").Size() != 2 {
		t.Fatalf("tags size %d", n.Get("tags").Size())
	}
	if !node.As[bool](n.Get("ok"), false) {
		t.Fatal("ok is not true")
	}
}

func TestParseNested(t *testing.T) {
	in := `
servers:
  - host: a
    port: 80
  - host: b
    port: 81
`
	n, err := ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.As[int](n.Get("servers").Get(1).Get("port"), -1); got != 81 {
		t.Fatalf("port %d", got)
	}
}

func TestParseError(t *testing.T) {
	_, err := Parse([]byte("a: [1, 2\n"))
	if err == nil {
		t.Fatal("unterminated flow sequence parsed")
	}
}

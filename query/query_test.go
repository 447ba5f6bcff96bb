package query

import (
	"testing"

	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/parse"
)

func mustParse(t *testing.T, s string) *node.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestEval(t *testing.T) {
	doc := mustParse(t, "servers:\n  - host: a\n    port: 80\nlimit: 3\n")
	type evalTest struct {
		src string
		out string
	}
	ets := []evalTest{
		{src: "limit + 1", out: "4"},
		{src: "servers[0].host", out: "a"},
		{src: "servers[0].port > 79", out: "true"},
		{src: "len(servers)", out: "1"},
		{src: "map(servers, #.host)", out: "[a]"},
	}
	for i, et := range ets {
		res, err := Eval(et.src, doc)
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if got := res.Content(); got != et.out {
			t.Errorf("test %d: got %q want %q", i, got, et.out)
		}
	}
}

func TestEvalScalarDoc(t *testing.T) {
	res, err := Eval("doc * 2", node.FromInt(21))
	if err != nil {
		t.Fatal(err)
	}
	if node.As[int](res, -1) != 42 {
		t.Fatalf("got %s", res.Content())
	}
}

func TestEvalError(t *testing.T) {
	if _, err := Eval("1 +", node.New()); err == nil {
		t.Fatal("malformed expression compiled")
	}
}

func TestMatches(t *testing.T) {
	doc := mustParse(t, "age: 30\n")
	ok, err := Matches("age >= 21", doc)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("predicate did not match")
	}
	if _, err := Matches("age + 1", doc); err == nil {
		t.Fatal("non-predicate accepted")
	}
}

func TestFilter(t *testing.T) {
	doc := mustParse(t, `
- name: a
  age: 30
- name: b
  age: 12
- name: c
  age: 50
`)
	kept, err := Filter(doc, "age >= 21")
	if err != nil {
		t.Fatal(err)
	}
	if kept.Size() != 2 {
		t.Fatalf("kept %d", kept.Size())
	}
	names := []string{}
	for _, v := range kept.All() {
		names = append(names, node.As[string](v.Get("name"), "?"))
	}
	if names[0] != "a" || names[1] != "c" {
		t.Fatalf("kept %v", names)
	}
	// kept elements alias the source
	kept.Get(0).GetOrCreate("seen").Set(true)
	if !node.As[bool](doc.Get(0).Get("seen"), false) {
		t.Fatal("kept element does not alias the source")
	}
}

func TestFilterValueBinding(t *testing.T) {
	doc := mustParse(t, "- 1\n- 5\n- 9\n")
	kept, err := Filter(doc, "value > 3")
	if err != nil {
		t.Fatal(err)
	}
	if kept.Size() != 2 {
		t.Fatalf("kept %d", kept.Size())
	}
}

func TestFilterNonSequence(t *testing.T) {
	if _, err := Filter(node.FromInt(1), "true"); err == nil {
		t.Fatal("filtered a scalar")
	}
}

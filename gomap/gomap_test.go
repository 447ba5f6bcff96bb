package gomap

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/treedoc-format/go-treedoc/node"
)

type server struct {
	Host string `treedoc:"host"`
	Port int    `treedoc:"port"`
	Note string `treedoc:"note,omitempty"`

	internal int `treedoc:"-"`
}

type cluster struct {
	Name    string   `treedoc:"name"`
	Servers []server `treedoc:"servers"`
	Tags    map[string]string
}

func TestMarshalStruct(t *testing.T) {
	c := cluster{
		Name: "prod",
		Servers: []server{
			{Host: "a", Port: 80},
			{Host: "b", Port: 81, Note: "canary"},
		},
		Tags: map[string]string{"env": "prod"},
	}
	n, err := Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	if got := node.As[string](n.Get("name"), ""); got != "prod" {
		t.Fatalf("name %q", got)
	}
	srv := n.Get("servers")
	if srv.Size() != 2 {
		t.Fatalf("servers size %d", srv.Size())
	}
	if got := node.As[int](srv.Get(1).Get("port"), -1); got != 81 {
		t.Fatalf("port %d", got)
	}
	// omitempty drops the zero note
	if srv.Get(0).Get("note") != nil {
		t.Fatal("empty note marshaled")
	}
	if node.As[string](srv.Get(1).Get("note"), "") != "canary" {
		t.Fatal("note lost")
	}
	// untagged fields use the Go name
	if node.As[string](n.Get("Tags").Get("env"), "") != "prod" {
		t.Fatal("tags lost")
	}
}

func TestMarshalSkipsDash(t *testing.T) {
	n, err := Marshal(server{Host: "a", internal: 7})
	if err != nil {
		t.Fatal(err)
	}
	if n.Get("internal") != nil {
		t.Fatal("skipped field marshaled")
	}
}

func TestUnmarshalStruct(t *testing.T) {
	n := node.FromValue(map[string]any{
		"name": "prod",
		"servers": []any{
			map[string]any{"host": "a", "port": 80},
		},
		"Tags": map[string]any{"env": "prod"},
	})
	var c cluster
	if err := Unmarshal(n, &c); err != nil {
		t.Fatal(err)
	}
	want := cluster{
		Name:    "prod",
		Servers: []server{{Host: "a", Port: 80}},
		Tags:    map[string]string{"env": "prod"},
	}
	if d := cmp.Diff(want, c, cmp.AllowUnexported(server{})); d != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", d)
	}
}

func TestUnmarshalCaseFold(t *testing.T) {
	type cfg struct {
		MaxConns int
	}
	n := node.FromValue(map[string]any{"maxconns": 9})
	var c cfg
	if err := Unmarshal(n, &c); err != nil {
		t.Fatal(err)
	}
	if c.MaxConns != 9 {
		t.Fatalf("MaxConns %d", c.MaxConns)
	}
}

type inner struct {
	X int `treedoc:"x"`
}

type outer struct {
	inner
	Y int `treedoc:"y"`
}

func TestEmbedded(t *testing.T) {
	n, err := Marshal(outer{inner: inner{X: 1}, Y: 2})
	if err != nil {
		t.Fatal(err)
	}
	// untagged anonymous fields inline
	if node.As[int](n.Get("x"), -1) != 1 || node.As[int](n.Get("y"), -1) != 2 {
		t.Fatalf("got %s", n.Content())
	}
	var o outer
	if err := Unmarshal(n, &o); err != nil {
		t.Fatal(err)
	}
	if o.X != 1 || o.Y != 2 {
		t.Fatalf("got %+v", o)
	}
}

func TestTo(t *testing.T) {
	n := node.FromValue(map[string]any{"host": "a", "port": 80})
	s, ok := To[server](n)
	if !ok {
		t.Fatal("To failed")
	}
	if s.Host != "a" || s.Port != 80 {
		t.Fatalf("got %+v", s)
	}
	if _, ok := To[int](node.FromString("zzz")); ok {
		t.Fatal("zzz converted to int")
	}
}

func TestUnmarshalNullZeroes(t *testing.T) {
	s := server{Host: "a", Port: 80}
	if err := Unmarshal(node.New(), &s); err != nil {
		t.Fatal(err)
	}
	if s.Host != "" || s.Port != 0 {
		t.Fatalf("null did not zero: %+v", s)
	}
}

func TestValue(t *testing.T) {
	n := node.FromValue(map[string]any{
		"a": int64(1),
		"b": []any{true, "x"},
		"c": nil,
	})
	got := Value(n)
	want := map[string]any{
		"a": int64(1),
		"b": []any{true, "x"},
		"c": nil,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Fatalf("unexpected value (-want +got):\n%s", d)
	}
	if v := Value(node.FromString("22")); v != "22" {
		t.Fatalf("string-typed scalar projected to %v", v)
	}
	if v := Value(node.FromInt(22)); v != int64(22) {
		t.Fatalf("integer scalar projected to %v", v)
	}
}

func TestEngineThroughAs(t *testing.T) {
	n := node.FromValue(map[string]any{"host": "a", "port": 80})
	s, ok := node.AsOptional[server](n)
	if !ok {
		t.Fatal("composite conversion failed")
	}
	if s.Host != "a" || s.Port != 80 {
		t.Fatalf("got %+v", s)
	}
	if !node.CanConvert[server](n) {
		t.Fatal("CanConvert disagrees with AsOptional")
	}
}

func TestSetComposite(t *testing.T) {
	n := node.New()
	if !n.Set(server{Host: "a", Port: 80}) {
		t.Fatal("Set(struct) failed")
	}
	if node.As[string](n.Get("host"), "") != "a" {
		t.Fatalf("got %s", n.Content())
	}
}

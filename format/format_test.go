package format

import "testing"

func TestParseFormat(t *testing.T) {
	type pfTest struct {
		in string
		f  Format
		e  bool
	}
	pfs := []pfTest{
		{in: "y", f: YAMLFormat},
		{in: "yaml", f: YAMLFormat},
		{in: "j", f: JSONFormat},
		{in: "json", f: JSONFormat},
		{in: "xml", e: true},
		{in: "", e: true},
	}
	for i, pf := range pfs {
		f, err := ParseFormat(pf.in)
		if pf.e {
			if err == nil {
				t.Errorf("test %d: no error for %q", i, pf.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d: %v", i, err)
			continue
		}
		if f != pf.f {
			t.Errorf("test %d: got %s want %s", i, f, pf.f)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Fatalf("got %s want %s", g, f)
		}
	}
}

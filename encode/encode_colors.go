package encode

import (
	"strconv"
	"strings"

	"github.com/treedoc-format/go-treedoc/node"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind node.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	StringColor
	NumberColor
	BoolColor
	NullColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range node.Kinds() {
		able := Colorable{
			Kind: k,
			Attr: SepColor,
		}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	}
	able := Colorable{Kind: node.ScalarKind}

	able.Attr = StringColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = NumberColor
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = BoolColor
	colors.Map[able] = color.CyanString

	able = Colorable{Kind: node.NullKind, Attr: NullColor}
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k node.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k node.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func applyColor(es *EncState, k node.Kind, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(k, attr, v)
}

// applyValueColor classes a leaf's text so strings, numbers, booleans and
// null each take their own color.
func applyValueColor(es *EncState, n *node.Node, v string) string {
	if es.Color == nil {
		return v
	}
	if n.Kind() == node.NullKind {
		return es.Color(node.NullKind, NullColor, v)
	}
	attr := StringColor
	raw := n.Scalar()
	if !n.IsString() {
		switch {
		case raw == "true" || raw == "false":
			attr = BoolColor
		default:
			if _, err := strconv.ParseFloat(raw, 64); err == nil {
				attr = NumberColor
			}
		}
	}
	return es.Color(node.ScalarKind, attr, v)
}

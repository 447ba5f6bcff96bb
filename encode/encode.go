// Package encode serializes node trees to YAML or JSON text.
//
// # Usage
//
//	n := node.FromMap(map[string]*node.Node{
//	    "name": node.FromString("alice"),
//	    "age":  node.FromInt(30),
//	})
//	err := encode.Encode(n, os.Stdout)
//
//	// JSON output
//	err := encode.Encode(n, w, encode.EncodeFormat(format.JSONFormat))
//
// The encoder walks only the node hand-off contract: Kind, Scalar, IsString,
// Size, Iter and Style. Container Style hints select block or flow layout in
// YAML; JSON is always flow.
//
// # Related Packages
//
//   - github.com/treedoc-format/go-treedoc/node - the document tree
//   - github.com/treedoc-format/go-treedoc/parse - text back to nodes
package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/node"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int
	skipPad       bool

	format format.Format

	Color func(node.Kind, ColorAttr, string) string
}

// Encode writes the node to w, followed by a newline. Encoding an undefined
// handle is an error; everything else renders.
func Encode(n *node.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := encode(n, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func encode(n *node.Node, w io.Writer, es *EncState) error {
	switch n.Kind() {
	case node.UndefinedKind:
		return fmt.Errorf("%w: undefined node", ErrEncoding)
	case node.NullKind, node.ScalarKind:
		if err := writePad(w, es); err != nil {
			return err
		}
		return writeString(w, scalarText(n, es))
	case node.SequenceKind:
		if useFlow(n, es) {
			if err := writePad(w, es); err != nil {
				return err
			}
			return writeString(w, flowString(n, es))
		}
		return encodeSequenceBlock(n, w, es)
	case node.MapKind:
		if useFlow(n, es) {
			if err := writePad(w, es); err != nil {
				return err
			}
			return writeString(w, flowString(n, es))
		}
		return encodeMapBlock(n, w, es)
	}
	return nil
}

// useFlow reports whether the container renders inline. JSON has no block
// form, and empty containers always render inline.
func useFlow(n *node.Node, es *EncState) bool {
	if es.format.IsJSON() {
		return true
	}
	if n.Size() == 0 {
		return true
	}
	return n.Style() == node.FlowStyle
}

func encodeSequenceBlock(n *node.Node, w io.Writer, es *EncState) error {
	first := true
	it := n.Iter()
	for it.Next() {
		if !first {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := writePad(w, es); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, n.Kind(), SepColor, "- ")); err != nil {
			return err
		}
		v := it.Value()
		if v.Kind().IsLeaf() || useFlow(v, es) {
			if err := writeString(w, inlineString(v, es)); err != nil {
				return err
			}
			continue
		}
		es.depth++
		es.skipPad = true
		err := encode(v, w, es)
		es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeMapBlock(n *node.Node, w io.Writer, es *EncState) error {
	first := true
	it := n.Iter()
	for it.Next() {
		if !first {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		first = false
		if err := writePad(w, es); err != nil {
			return err
		}
		k, v := it.Entry()
		if err := writeString(w, fieldString(k, es)); err != nil {
			return err
		}
		if err := writeString(w, applyColor(es, n.Kind(), SepColor, ":")); err != nil {
			return err
		}
		if v.Kind().IsLeaf() || useFlow(v, es) {
			if err := writeString(w, " "+inlineString(v, es)); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		es.depth++
		err := encode(v, w, es)
		es.depth--
		if err != nil {
			return err
		}
	}
	return nil
}

// fieldString renders a map key. Scalar keys render like scalar values; a
// container key renders in flow form, which YAML permits in key position.
func fieldString(k *node.Node, es *EncState) string {
	if k.Kind().IsLeaf() {
		return applyColor(es, k.Kind(), FieldColor, scalarPlain(k, es))
	}
	return flowString(k, es)
}

// inlineString renders a leaf or flow container without leading pad.
func inlineString(n *node.Node, es *EncState) string {
	if n.Kind().IsLeaf() {
		return scalarText(n, es)
	}
	return flowString(n, es)
}

func flowString(n *node.Node, es *EncState) string {
	var b strings.Builder
	flowTo(n, &b, es)
	return b.String()
}

func flowTo(n *node.Node, b *strings.Builder, es *EncState) {
	switch n.Kind() {
	case node.UndefinedKind:
	case node.NullKind, node.ScalarKind:
		b.WriteString(scalarText(n, es))
	case node.SequenceKind:
		b.WriteString(applyColor(es, n.Kind(), SepColor, "["))
		first := true
		it := n.Iter()
		for it.Next() {
			if !first {
				b.WriteString(applyColor(es, n.Kind(), SepColor, ", "))
			}
			first = false
			flowTo(it.Value(), b, es)
		}
		b.WriteString(applyColor(es, n.Kind(), SepColor, "]"))
	case node.MapKind:
		b.WriteString(applyColor(es, n.Kind(), SepColor, "{"))
		first := true
		it := n.Iter()
		for it.Next() {
			if !first {
				b.WriteString(applyColor(es, n.Kind(), SepColor, ", "))
			}
			first = false
			k, v := it.Entry()
			if es.format.IsJSON() {
				b.WriteString(applyColor(es, k.Kind(), FieldColor, jsonFieldString(k)))
			} else if k.Kind().IsLeaf() {
				b.WriteString(applyColor(es, k.Kind(), FieldColor, scalarPlain(k, es)))
			} else {
				flowTo(k, b, es)
			}
			b.WriteString(applyColor(es, n.Kind(), SepColor, ": "))
			flowTo(v, b, es)
		}
		b.WriteString(applyColor(es, n.Kind(), SepColor, "}"))
	}
}

// jsonFieldString renders a key as a JSON object member name, which must be
// a string. Non-scalar keys fall back to their flattened content.
func jsonFieldString(k *node.Node) string {
	if k.Kind() == node.ScalarKind {
		return strconv.Quote(k.Scalar())
	}
	return strconv.Quote(k.Content())
}

func scalarText(n *node.Node, es *EncState) string {
	return applyValueColor(es, n, scalarPlain(n, es))
}

func scalarPlain(n *node.Node, es *EncState) string {
	if n.Kind() == node.NullKind {
		return "null"
	}
	v := n.Scalar()
	if es.format.IsJSON() {
		if n.IsString() || !jsonBare(v) {
			return strconv.Quote(v)
		}
		return v
	}
	if n.IsString() && needsQuote(v) {
		return strconv.Quote(v)
	}
	return v
}

// jsonBare reports whether a non-string scalar's text is a legal bare JSON
// token.
func jsonBare(v string) bool {
	switch v {
	case "true", "false", "null":
		return true
	}
	if _, err := strconv.ParseInt(v, 10, 64); err == nil {
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	return false
}

// needsQuote reports whether a string scalar must be quoted in YAML to keep
// its type and shape on re-parse.
func needsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v {
	case "null", "~", "true", "false", "yes", "no", "on", "off",
		"Null", "True", "False", "Yes", "No", "On", "Off",
		"NULL", "TRUE", "FALSE", "YES", "NO", "ON", "OFF":
		return true
	}
	if _, err := strconv.ParseFloat(v, 64); err == nil {
		return true
	}
	if v != strings.TrimSpace(v) {
		return true
	}
	if strings.ContainsAny(v, ":#{}[],&*!|>'\"%@`\n\t") {
		return true
	}
	switch v[0] {
	case '-', '?', ' ':
		return true
	}
	return false
}

func writePad(w io.Writer, es *EncState) error {
	if es.skipPad {
		es.skipPad = false
		return nil
	}
	return writeString(w, strings.Repeat(strings.Repeat(" ", es.indent), es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Package patch applies RFC 6902 JSON Patch and RFC 7386 merge patch
// operations to node trees.
//
// Documents round-trip through JSON for the patch engine, so comments-free
// structural content is preserved but presentation styles reset to the
// parser defaults.
package patch

import (
	"bytes"
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/format"
	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/parse"
)

var ErrPatch = errors.New("patch error")

// Apply applies an RFC 6902 patch document (a JSON array of operations) to
// doc and returns the patched tree. doc is not modified.
func Apply(doc *node.Node, rfc6902 []byte) (*node.Node, error) {
	if debug.Patch() {
		debug.Logf("apply json-patch to %s\n", doc.Path())
	}
	ops, err := jsonpatch.DecodePatch(rfc6902)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// ApplyNode is Apply with the patch given as a tree, as when the operations
// themselves were parsed from a document.
func ApplyNode(doc, ops *node.Node) (*node.Node, error) {
	d, err := MarshalJSON(ops)
	if err != nil {
		return nil, err
	}
	return Apply(doc, d)
}

// Merge applies an RFC 7386 merge patch to doc and returns the merged tree.
func Merge(doc *node.Node, rfc7386 []byte) (*node.Node, error) {
	if debug.Patch() {
		debug.Logf("apply merge-patch to %s\n", doc.Path())
	}
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, rfc7386)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out, parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

// MergeNode is Merge with the patch given as a tree.
func MergeNode(doc, merge *node.Node) (*node.Node, error) {
	d, err := MarshalJSON(merge)
	if err != nil {
		return nil, err
	}
	return Merge(doc, d)
}

// MarshalJSON renders a tree as JSON bytes for the patch engine.
func MarshalJSON(n *node.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(n, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return bytes.TrimSpace(buf.Bytes()), nil
}

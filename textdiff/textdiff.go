// Package textdiff renders textual diffs of documents.
package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/node"
)

// Strings diffs two strings, returning a colored inline rendering of the
// edits. Equal inputs yield the input unchanged.
func Strings(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	return diffCfg.DiffPrettyText(diffs)
}

// Equal reports whether two trees render identically.
func Equal(from, to *node.Node) bool {
	return node.Compare(from, to) == 0
}

// Nodes renders both trees and diffs the text. The rendering uses the
// encode defaults, so presentation differences (style hints) show up along
// with structural ones; compare with node.Compare when only structure
// matters.
func Nodes(from, to *node.Node, opts ...encode.EncodeOption) (string, error) {
	var fromBuf, toBuf strings.Builder
	if err := encode.Encode(from, &fromBuf, opts...); err != nil {
		return "", err
	}
	if err := encode.Encode(to, &toBuf, opts...); err != nil {
		return "", err
	}
	if debug.Diff() {
		debug.Logf("diff %s against %s\n", from.Path(), to.Path())
	}
	return Strings(fromBuf.String(), toBuf.String()), nil
}

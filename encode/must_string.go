package encode

import (
	"bytes"
	"strings"

	"github.com/treedoc-format/go-treedoc/node"
)

func MustString(n *node.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(n, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

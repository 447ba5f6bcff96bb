package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/node"
)

type Doc struct{ *node.Node }

func (y Doc) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf); err != nil {
		return fmt.Sprintf("[raw *node.Node] %v", y.Node)
	}
	return buf.String()
}

// Logf writes a diagnostic line to stderr. *node.Node arguments render as
// documents, plain Go containers as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("[raw *node.Node] %v", x)
				continue
			}
			args[i] = buf.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

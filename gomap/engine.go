package gomap

import "github.com/treedoc-format/go-treedoc/node"

// reflectEngine plugs the package into node's conversion hooks, so that
// node.Set, node.FromValue and node.As work for struct and composite types
// once gomap is imported.
type reflectEngine struct{}

func (reflectEngine) EncodeValue(v any) (*node.Node, error) {
	return Marshal(v)
}

func (reflectEngine) DecodeValue(n *node.Node, out any) error {
	return Unmarshal(n, out)
}

func init() {
	node.RegisterEngine(reflectEngine{})
}

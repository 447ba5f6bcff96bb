// Package parse turns YAML or JSON text into node trees.
//
// # Usage
//
//	doc, err := parse.Parse([]byte(`{name: "alice", age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	docs, err := parse.ParseAll(data) // multi-document streams
//
// Lexing and grammar are delegated to the goccy go-yaml parser; this package
// only maps its syntax tree onto nodes, preserving key order, duplicate
// keys, anchors (as aliased handles) and flow/block presentation.
//
// # Related Packages
//
//   - github.com/treedoc-format/go-treedoc/node - the document tree
//   - github.com/treedoc-format/go-treedoc/encode - nodes back to text
package parse

import (
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/treedoc-format/go-treedoc/node"
)

// Parse reads the first document in d into a node tree. An empty input
// yields a Null node.
func Parse(d []byte, opts ...ParseOption) (*node.Node, error) {
	docs, err := ParseAll(d, opts...)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return node.New(), nil
	}
	return docs[0], nil
}

// ParseString is Parse over a string.
func ParseString(s string, opts ...ParseOption) (*node.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseAll reads every document in d.
func ParseAll(d []byte, opts ...ParseOption) ([]*node.Node, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	res := make([]*node.Node, 0, len(f.Docs))
	for i, doc := range f.Docs {
		b := &builder{anchors: map[string]*node.Node{}}
		n, err := b.build(doc.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: document %d: %w", ErrParse, i, err)
		}
		res = append(res, n)
	}
	return res, nil
}

type builder struct {
	anchors map[string]*node.Node
}

func (b *builder) build(a ast.Node) (*node.Node, error) {
	if a == nil {
		return node.New(), nil
	}
	switch x := a.(type) {
	case *ast.NullNode:
		return node.New(), nil
	case *ast.BoolNode:
		return node.FromBool(x.Value), nil
	case *ast.IntegerNode:
		return integerNode(x), nil
	case *ast.FloatNode:
		return node.FromFloat(x.Value), nil
	case *ast.InfinityNode:
		return node.FromFloat(x.Value), nil
	case *ast.NanNode:
		return node.FromString(".nan"), nil
	case *ast.StringNode:
		return node.FromString(x.Value), nil
	case *ast.LiteralNode:
		return node.FromString(x.Value.Value), nil
	case *ast.MergeKeyNode:
		return node.FromString("<<"), nil
	case *ast.SequenceNode:
		return b.buildSequence(x)
	case *ast.MappingNode:
		return b.buildMapping(x.Values, x.IsFlowStyle)
	case *ast.MappingValueNode:
		// a single top-level pair arrives without its enclosing
		// mapping node
		return b.buildMapping([]*ast.MappingValueNode{x}, false)
	case *ast.MappingKeyNode:
		return b.build(x.Value)
	case *ast.AnchorNode:
		n, err := b.build(x.Value)
		if err != nil {
			return nil, err
		}
		if name, ok := x.Name.(*ast.StringNode); ok {
			b.anchors[name.Value] = n
		}
		return n, nil
	case *ast.AliasNode:
		name, ok := x.Value.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("alias with non-string name")
		}
		n, ok := b.anchors[name.Value]
		if !ok {
			return nil, fmt.Errorf("alias to unknown anchor %q", name.Value)
		}
		// the same handle, so the aliases stay aliased in the tree
		return n, nil
	case *ast.TagNode:
		// tags carry no meaning here; keep the tagged value
		return b.build(x.Value)
	case *ast.CommentNode:
		return node.New(), nil
	default:
		return nil, fmt.Errorf("unsupported syntax node %T", a)
	}
}

func (b *builder) buildSequence(sn *ast.SequenceNode) (*node.Node, error) {
	res := node.NewKind(node.SequenceKind)
	if sn.IsFlowStyle {
		res.SetStyle(node.FlowStyle)
	} else {
		res.SetStyle(node.BlockStyle)
	}
	for _, e := range sn.Values {
		c, err := b.build(e)
		if err != nil {
			return nil, err
		}
		res.PushNode(c)
	}
	return res, nil
}

func (b *builder) buildMapping(pairs []*ast.MappingValueNode, flow bool) (*node.Node, error) {
	res := node.NewKind(node.MapKind)
	if flow {
		res.SetStyle(node.FlowStyle)
	} else {
		res.SetStyle(node.BlockStyle)
	}
	for _, p := range pairs {
		k, err := b.build(p.Key)
		if err != nil {
			return nil, err
		}
		v, err := b.build(p.Value)
		if err != nil {
			return nil, err
		}
		// ForceInsert keeps duplicate keys in document order
		res.ForceInsert(k, v)
	}
	return res, nil
}

func integerNode(in *ast.IntegerNode) *node.Node {
	switch v := in.Value.(type) {
	case int64:
		return node.FromInt(v)
	case uint64:
		return node.FromValue(v)
	case int:
		return node.FromInt(int64(v))
	}
	if tok := in.GetToken(); tok != nil {
		if i, err := strconv.ParseInt(tok.Value, 0, 64); err == nil {
			return node.FromInt(i)
		}
		return node.FromString(tok.Value)
	}
	return node.New()
}

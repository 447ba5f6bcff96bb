// Package query evaluates expressions against node trees.
//
// Documents are projected onto plain Go values and handed to the expr
// language; results are encoded back into nodes. Map documents expose their
// fields as variables directly, any other document is bound to "doc":
//
//	out, err := query.Eval("servers[0].port + 1", cfg)
//	kept, err := query.Filter(list, "value.age >= 21")
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/gomap"
	"github.com/treedoc-format/go-treedoc/node"
)

var ErrQuery = errors.New("query error")

// Eval compiles and runs src against doc, returning the result as a node.
func Eval(src string, doc *node.Node) (*node.Node, error) {
	env := envFor(doc)
	if debug.Query() {
		debug.Logf("eval %q against %s\n", src, doc.Path())
	}
	program, err := expr.Compile(src, expr.Env(env), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	out, err := vm.Run(program, env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res, err := gomap.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Matches compiles and runs src against doc and reports the boolean result.
// A non-boolean result is an error.
func Matches(src string, doc *node.Node) (bool, error) {
	res, err := Eval(src, doc)
	if err != nil {
		return false, err
	}
	b, ok := node.AsOptional[bool](res)
	if !ok {
		return false, fmt.Errorf("%w: expression %q is not a predicate", ErrQuery, src)
	}
	return b, nil
}

// Filter evaluates src as a predicate over each element of a sequence and
// returns a new sequence of the elements that matched. The returned
// sequence's elements alias the input's, so mutating a kept element mutates
// the source document. Each element's fields are in scope when the element
// is a map; the element itself is always bound to "value".
func Filter(seq *node.Node, src string) (*node.Node, error) {
	if !seq.IsSequence() {
		return nil, fmt.Errorf("%w: filter over %s node", ErrQuery, seq.Kind())
	}
	program, err := expr.Compile(src, expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	res := node.NewKind(node.SequenceKind)
	it := seq.Iter()
	for it.Next() {
		v := it.Value()
		out, err := vm.Run(program, envFor(v))
		if err != nil {
			return nil, fmt.Errorf("%w: element %s: %w", ErrQuery, v.Path(), err)
		}
		keep, ok := out.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: expression %q is not a predicate", ErrQuery, src)
		}
		if keep {
			res.PushNode(v)
		}
	}
	return res, nil
}

func envFor(doc *node.Node) map[string]any {
	v := gomap.Value(doc)
	env, ok := v.(map[string]any)
	if !ok {
		env = map[string]any{"doc": v}
	}
	env["value"] = v
	return env
}

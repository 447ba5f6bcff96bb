package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/query"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	src := args[0]
	docs, err := loadDocs(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	res := make([]*node.Node, 0, len(docs))
	for i, doc := range docs {
		out, err := query.Eval(src, doc)
		if err != nil {
			return fmt.Errorf("error evaluating against document %d: %w", i, err)
		}
		res = append(res, out)
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

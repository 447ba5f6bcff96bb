package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/patch"
)

func applyPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	p, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	docs, err := loadDocs(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	res := make([]*node.Node, 0, len(docs))
	for i, doc := range docs {
		var out *node.Node
		if cfg.Merge {
			out, err = patch.MergeNode(doc, p)
		} else {
			out, err = patch.ApplyNode(doc, p)
		}
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
		}
		res = append(res, out)
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

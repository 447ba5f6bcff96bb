package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/node"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a document path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	docs, err := loadDocs(cfg.MainConfig, args[1:])
	if err != nil {
		return err
	}
	var res []*node.Node
	for _, doc := range docs {
		sub, ok := doc.GetPath(path)
		if !ok {
			continue
		}
		res = append(res, sub)
	}
	if len(res) == 0 {
		return fmt.Errorf("no values at %s", path)
	}
	return writeDocs(cfg.MainConfig, cc.Out, res)
}

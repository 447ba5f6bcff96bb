package main

import (
	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := loadDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs,
		encode.EncodeColors(encode.NewColors()))
}

package main

import (
	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := loadDocs(cfg.MainConfig, args)
	if err != nil {
		return err
	}
	return writeDocs(cfg.MainConfig, cc.Out, docs)
}

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/parse"
	"github.com/treedoc-format/go-treedoc/textdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	b, err := loadDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if textdiff.Equal(a, b) {
		return nil
	}
	d, err := textdiff.Nodes(a, b, encode.EncodeFormat(cfg.outFormat()))
	if err != nil {
		return fmt.Errorf("error diffing %s and %s: %w", args[0], args[1], err)
	}
	fmt.Fprint(cc.Out, d)
	return cli.ExitCodeErr(1)
}

func loadDoc(cfg *MainConfig, file string) (*node.Node, error) {
	d, err := readFile(file)
	if err != nil {
		return nil, err
	}
	doc, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", file, err)
	}
	return doc, nil
}

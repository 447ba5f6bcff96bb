package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/encode"
	"github.com/treedoc-format/go-treedoc/node"
	"github.com/treedoc-format/go-treedoc/parse"
)

func tdMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func readFile(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}

// loadDocs parses every document in the named files, or stdin when no file
// is given.
func loadDocs(cfg *MainConfig, files []string) ([]*node.Node, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []*node.Node
	for _, file := range files {
		d, err := readFile(file)
		if err != nil {
			return nil, err
		}
		docs, err := parse.ParseAll(d, cfg.parseOpts()...)
		if err != nil {
			return nil, fmt.Errorf("error parsing %s: %w", file, err)
		}
		if debug.Parse() {
			debug.Logf("parsed %d documents from %s\n", len(docs), file)
		}
		res = append(res, docs...)
	}
	return res, nil
}

func writeDocs(cfg *MainConfig, w io.Writer, docs []*node.Node, extra ...encode.EncodeOption) error {
	n := len(docs)
	opts := append(cfg.encOpts(w), extra...)
	for i, doc := range docs {
		if err := encode.Encode(doc, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}

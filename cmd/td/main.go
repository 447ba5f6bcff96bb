package main

import (
	"context"

	"github.com/scott-cotton/cli"

	"github.com/treedoc-format/go-treedoc/debug"
	"github.com/treedoc-format/go-treedoc/node"

	_ "github.com/treedoc-format/go-treedoc/gomap"
)

func main() {
	if node.DiagEnabled() {
		node.SetDiagf(func(msg string, args ...any) {
			debug.Logf("node: "+msg, args...)
		})
	}
	cli.MainContext(context.Background(), MainCommand())
}

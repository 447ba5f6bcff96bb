// Package debug provides env-gated diagnostics for treedoc tooling.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Query bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("TREEDOC_DEBUG_PARSE")
	d.Patch = boolEnv("TREEDOC_DEBUG_PATCH")
	d.Query = boolEnv("TREEDOC_DEBUG_QUERY")
	d.Diff = boolEnv("TREEDOC_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}

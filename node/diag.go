package node

import (
	"fmt"
	"os"
	"strconv"
)

// The node contract never raises failures to callers; fallible operations
// report false or an invalid handle and describe what happened through this
// side-channel instead.

var diagf = stderrDiagf

// Diagf emits a diagnostic through the installed sink. The default sink
// writes to stderr when TREEDOC_DEBUG_NODE is set and is silent otherwise.
func Diagf(msg string, args ...any) {
	diagf(msg, args...)
}

// SetDiagf replaces the diagnostic sink; nil restores the default.
func SetDiagf(f func(msg string, args ...any)) {
	if f == nil {
		diagf = stderrDiagf
		return
	}
	diagf = f
}

var diagEnabled bool

func init() {
	diagEnabled = boolEnv("TREEDOC_DEBUG_NODE")
}

// DiagEnabled reports whether TREEDOC_DEBUG_NODE was set at startup.
func DiagEnabled() bool {
	return diagEnabled
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func stderrDiagf(msg string, args ...any) {
	if !diagEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "treedoc/node: "+msg, args...)
}

package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(maxprocsLogger(os.Args[1:], env.Stderr)))

	os.Exit(runMain(os.Args, env))
}

// maxprocsLogger returns a logger that reports to w when args ask for
// verbose output, and discards otherwise.
func maxprocsLogger(args []string, w io.Writer) func(string, ...any) {
	if slices.Contains(args, "-v") || slices.Contains(args, "--verbose") {
		return func(format string, a ...any) {
			fmt.Fprintf(w, format+"\n", a...)
		}
	}
	return func(string, ...any) {}
}

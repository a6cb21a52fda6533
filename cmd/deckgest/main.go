// Command deckgest converts a document into a .pptx presentation.
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// A bad GOMAXPROCS value only means runtime defaults apply.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...any) {}))

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err != errHelp {
			fmt.Fprintln(stderr, "deckgest:", err)
			return 1
		}
		return 0
	}
	if err := convertFile(opts, stdout, stderr); err != nil {
		fmt.Fprintln(stderr, "deckgest:", err)
		return 1
	}
	return 0
}

// Command formulaorder prints formula declarations in dependency order.
package main

import (
	"io"
	"os"

	"github.com/golangsnmp/formulaorder/cmd/internal/cliutil"
)

// Exit codes.
const (
	exitOK     = 0 // success, including "syntax error" or "cycle" without --exit-code
	exitError  = 1 // usage, config, or I/O failure; syntax error with --exit-code
	exitCycle  = 2 // cycle with --exit-code
	exitSyntax = exitError
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		cliutil.PrintError(stderr, "%v", err)
		return exitError
	}
	return exitOK
}

// Package cliutil provides shared CLI utilities for formulaorder commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// GetOutput opens the output file or returns fallback when outputFile is
// empty.
func GetOutput(outputFile string, fallback io.Writer) (io.Writer, func(), error) {
	if outputFile == "" {
		return fallback, func() {}, nil
	}
	f, err := os.Create(outputFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// PrintError writes a formatted error message to w.
func PrintError(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, "error: "+format+"\n", args...)
}

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zigcore/internal/diag"
	"zigcore/internal/diagfmt"
)

// printDiagnostics renders bag's contents to stderr, each followed by the
// reported source line and a caret under the reported column.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, path string, src string) {
	if bag.Len() == 0 {
		return
	}
	opts := diagfmt.PrettyOpts{
		Color:   wantColor(cmd, os.Stderr),
		Context: 2,
	}
	diagfmt.Pretty(os.Stderr, bag, path, strings.Split(src, "\n"), opts)
}

func readMaxDiagnostics(cmd *cobra.Command) (int, error) {
	return cmd.Root().PersistentFlags().GetInt("max-diagnostics")
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zigcore/internal/diag"
	"zigcore/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and report syntax errors",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	maxDiagnostics, err := readMaxDiagnostics(cmd)
	if err != nil {
		return err
	}

	bag := diag.NewBag(maxDiagnostics)
	b := parser.ParseFile(path, string(src), bag)

	printDiagnostics(cmd, bag, path, string(src))
	if bag.HasErrors() {
		return fmt.Errorf("parse failed: %d error(s)", countErrors(bag))
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "parsed %d top-level item(s)\n", len(b.File.Items))
	}
	return nil
}

func countErrors(bag *diag.Bag) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			n++
		}
	}
	return n
}

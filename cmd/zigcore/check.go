package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"zigcore/internal/compiler"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse and semantically analyze a source file without lowering or linking",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	maxDiagnostics, err := readMaxDiagnostics(cmd)
	if err != nil {
		return err
	}

	ctx := compiler.NewContext(path, false, maxDiagnostics)
	ctx.Parse(string(src))
	ctx.RunSemanticAnalysis()

	printDiagnostics(cmd, ctx.Bag, path, string(src))
	printStageTimings(cmd, ctx.Timings)

	if ctx.Bag.Len() > 0 {
		if ctx.Bag.HasErrors() {
			return fmt.Errorf("check failed: %d error(s)", countErrors(ctx.Bag))
		}
		return fmt.Errorf("check failed: %d warning(s)", ctx.Bag.Len())
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "no errors, %d function(s) defined\n", ctx.Defs.Len())
	}
	return nil
}

// Command zigcore is the CLI front end for the compiler core: tokenize,
// parse, check, and build subcommands over the AST/sema/lower/compiler
// packages.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"zigcore/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "zigcore",
	Short: "A small ahead-of-time compiler core",
	Long:  "zigcore parses, analyzes, lowers, and links a tiny extern/fn source language.",
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-stage timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 100, "maximum number of diagnostics to collect")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func wantColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag != "off" && isTerminal(f))
}

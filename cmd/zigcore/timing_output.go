package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"zigcore/internal/compiler"
)

var timedStages = []struct {
	stage compiler.Stage
	label string
}{
	{compiler.StageParse, "parse"},
	{compiler.StageAnalyze, "analyze"},
	{compiler.StageLower, "lower"},
	{compiler.StageVerify, "verify"},
	{compiler.StageEmit, "emit"},
	{compiler.StageLink, "link"},
}

// printStageTimings prints one line per recorded pipeline stage when the
// root --timings flag is set; it is otherwise silent.
func printStageTimings(cmd *cobra.Command, timings compiler.Timings) {
	show, _ := cmd.Root().PersistentFlags().GetBool("timings")
	if !show {
		return
	}
	out := cmd.OutOrStdout()
	for _, s := range timedStages {
		if d := timings.Duration(s.stage); d > 0 {
			fmt.Fprintf(out, "%-8s %.2fms\n", s.label, toMillis(d))
		}
	}
	fmt.Fprintf(out, "%-8s %.2fms\n", "total", toMillis(timings.Total()))
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

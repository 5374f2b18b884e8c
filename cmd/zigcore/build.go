package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"zigcore/internal/compiler"
	"zigcore/internal/prof"
	"zigcore/internal/project"
	"zigcore/internal/trace"
	"zigcore/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] [file]",
	Short: "Parse, analyze, lower, and link a source file into an executable",
	Long:  "build compiles the given file, or the entry file named by zigcore.toml if no path is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output binary path (defaults to the project name or a.out)")
	buildCmd.Flags().Bool("static", false, "link statically")
	buildCmd.Flags().Bool("emit-llvm", false, "also write the textual LLVM IR module alongside the binary")
	buildCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	buildCmd.Flags().String("trace", "off", "pipeline tracing verbosity (off|phase|detail)")
	buildCmd.Flags().String("cpuprofile", "", "write a CPU profile to this path")
}

func runBuild(cmd *cobra.Command, args []string) error {
	outputFlag, _ := cmd.Flags().GetString("output")
	static, _ := cmd.Flags().GetBool("static")
	emitLLVM, _ := cmd.Flags().GetBool("emit-llvm")
	uiValue, _ := cmd.Flags().GetString("ui")
	traceValue, _ := cmd.Flags().GetString("trace")
	cpuProfilePath, _ := cmd.Flags().GetString("cpuprofile")

	uiModeValue, err := readUIMode(uiValue)
	if err != nil {
		return err
	}
	traceLevel, err := trace.ParseLevel(traceValue)
	if err != nil {
		return err
	}

	inputPath, outputPath, err := resolveBuildPaths(args, outputFlag)
	if err != nil {
		return err
	}

	if cpuProfilePath != "" {
		if err := prof.StartCPU(cpuProfilePath); err != nil {
			return fmt.Errorf("start CPU profile: %w", err)
		}
		defer prof.StopCPU()
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inputPath, err)
	}

	maxDiagnostics, err := readMaxDiagnostics(cmd)
	if err != nil {
		return err
	}
	ctx := compiler.NewContext(inputPath, static, maxDiagnostics)

	tracer := trace.NewStreamTracer(os.Stderr, traceLevel)
	emit := tracingEmitter(tracer)

	var pipelineErr error
	if shouldUseTUI(uiModeValue) {
		pipelineErr = runBuildWithUI(fmt.Sprintf("zigcore build %s", inputPath), ctx, string(src), outputPath, emitLLVM)
	} else {
		pipelineErr = runPipeline(ctx, string(src), outputPath, emitLLVM, emit)
	}

	printDiagnostics(cmd, ctx.Bag, inputPath, string(src))
	printStageTimings(cmd, ctx.Timings)
	if pipelineErr != nil {
		return pipelineErr
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "built %s\n", outputPath)
	}
	return nil
}

// resolveBuildPaths decides the input source file and the output binary
// path: an explicit [file] argument wins; otherwise zigcore.toml (if found
// above the working directory) supplies both the entry file and a default
// output name.
func resolveBuildPaths(args []string, outputFlag string) (inputPath, outputPath string, err error) {
	if len(args) == 1 {
		inputPath = args[0]
		outputPath = outputFlag
		if outputPath == "" {
			outputPath = "a.out"
		}
		return inputPath, outputPath, nil
	}

	manifest, found, loadErr := project.Load(".")
	if loadErr != nil {
		return "", "", loadErr
	}
	if !found {
		return "", "", fmt.Errorf("no input file given and no zigcore.toml found")
	}
	inputPath = manifest.MainPath()
	outputPath = outputFlag
	if outputPath == "" {
		outputPath = manifest.OutputPath()
	}
	return inputPath, outputPath, nil
}

// tracingEmitter reports every stage transition to tracer in addition to
// whatever the caller does with the event (nothing, by default — build.go
// only needs the tracer side-channel when not using the TUI, since the TUI
// path funnels events through its own channel instead).
func tracingEmitter(tracer trace.Tracer) stageEmitter {
	return func(stage compiler.Stage, status ui.Status, detail string) {
		name := strings.ToLower(string(stage))
		switch status {
		case ui.StatusWorking:
			tracer.Begin(trace.ScopePhase, name, detail)
		case ui.StatusDone, ui.StatusError:
			tracer.End(trace.ScopePhase, name, detail)
		}
	}
}

package main

import (
	"fmt"

	"zigcore/internal/compiler"
	"zigcore/internal/ui"
)

// stageEmitter is called around every pipeline stage, letting build.go
// drive either the bubbletea progress view or a plain sequential report.
type stageEmitter func(stage compiler.Stage, status ui.Status, detail string)

// runPipeline drives Parse → RunSemanticAnalysis → RunCodegen → Verify →
// EmitAndLink, stopping early (before lowering) if analysis already
// reported errors, matching the core's "skip lowering on errors" contract.
func runPipeline(ctx *compiler.Context, src, outPath string, emitLLVMDump bool, emit stageEmitter) error {
	emit(compiler.StageParse, ui.StatusWorking, "")
	ctx.Parse(src)
	if ctx.Bag.HasErrors() {
		emit(compiler.StageParse, ui.StatusError, fmt.Sprintf("%d error(s)", countErrors(ctx.Bag)))
		return fmt.Errorf("%d syntax error(s)", countErrors(ctx.Bag))
	}
	emit(compiler.StageParse, ui.StatusDone, "")

	emit(compiler.StageAnalyze, ui.StatusWorking, "")
	ctx.RunSemanticAnalysis()
	if ctx.Bag.HasErrors() {
		emit(compiler.StageAnalyze, ui.StatusError, fmt.Sprintf("%d error(s)", countErrors(ctx.Bag)))
		return fmt.Errorf("%d semantic error(s)", countErrors(ctx.Bag))
	}
	emit(compiler.StageAnalyze, ui.StatusDone, "")

	emit(compiler.StageLower, ui.StatusWorking, "")
	ctx.RunCodegen(buildProducerVersion())
	if ctx.Bag.HasErrors() {
		emit(compiler.StageLower, ui.StatusError, fmt.Sprintf("%d error(s)", countErrors(ctx.Bag)))
		return fmt.Errorf("%d lowering error(s)", countErrors(ctx.Bag))
	}
	emit(compiler.StageLower, ui.StatusDone, "")

	emit(compiler.StageVerify, ui.StatusWorking, "")
	ctx.Verify()
	emit(compiler.StageVerify, ui.StatusDone, "")

	emit(compiler.StageEmit, ui.StatusWorking, "")
	emit(compiler.StageLink, ui.StatusWorking, "")
	if err := ctx.EmitAndLink(outPath, emitLLVMDump); err != nil {
		emit(compiler.StageEmit, ui.StatusError, err.Error())
		emit(compiler.StageLink, ui.StatusError, err.Error())
		return err
	}
	emit(compiler.StageEmit, ui.StatusDone, "")
	emit(compiler.StageLink, ui.StatusDone, "")
	return nil
}

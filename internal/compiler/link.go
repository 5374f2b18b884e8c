package compiler

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"golang.org/x/sync/errgroup"

	"zigcore/internal/irgen"
)

// EmitAndLink emits the object file and spawns
// `ld -o <out_path> <out_path>.o -lc`. A non-zero linker exit is returned
// to the caller as an error; it is not treated as an internal-bug condition
// the way a verifier failure is.
//
// The textual module dump (written for developer inspection, when
// requested) and the object-file emission are run concurrently via
// errgroup: both are read-only traversals of the already verified, final
// module, so the core's single-threaded-compute guarantee is not
// violated — the core itself (Analyzer, Lowerer) already ran to
// completion single-threaded; only this outer fan-out of two independent
// I/O writes is concurrent.
func (ctx *Context) EmitAndLink(outPath string, emitLLVMDump bool) error {
	start := time.Now()

	var g errgroup.Group
	if emitLLVMDump {
		g.Go(func() error {
			return os.WriteFile(outPath+".dump.ll", []byte(ctx.Module.Dump()), 0o644)
		})
	}
	g.Go(func() error {
		irgen.EmitObject(ctx.Module, outPath)
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("zigcore: emitting build artifacts: %w", err)
	}
	ctx.Timings.Set(StageEmit, time.Since(start))

	start = time.Now()
	cmd := exec.Command("ld", "-o", outPath, outPath+".o", "-lc")
	cmd.Stderr = os.Stderr
	cmd.Stdout = os.Stdout
	err := cmd.Run()
	ctx.Timings.Set(StageLink, time.Since(start))
	if err != nil {
		return fmt.Errorf("zigcore: link: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"zigcore/internal/compiler"
	"zigcore/internal/ui"
)

// runBuildWithUI drives runPipeline in a goroutine while a bubbletea
// progress view renders stage events on the foreground terminal.
func runBuildWithUI(title string, ctx *compiler.Context, src, outPath string, emitLLVMDump bool) error {
	events := make(chan ui.Event, 64)
	errCh := make(chan error, 1)

	go func() {
		err := runPipeline(ctx, src, outPath, emitLLVMDump, func(stage compiler.Stage, status ui.Status, detail string) {
			events <- ui.Event{Stage: stage, Status: status, Detail: detail}
		})
		errCh <- err
		close(events)
	}()

	model := ui.NewProgressModel(title, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	if _, err := program.Run(); err != nil {
		<-errCh
		return fmt.Errorf("progress view: %w", err)
	}
	return <-errCh
}

package prof

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStartStopCPUWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	if err := StartCPU(path); err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	StopCPU()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("profile file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("profile file is empty")
	}
	if cpuFile != nil {
		t.Fatal("StopCPU should clear cpuFile")
	}
}

func TestStartCPUInvalidPathErrors(t *testing.T) {
	if err := StartCPU(filepath.Join(t.TempDir(), "nonexistent-dir", "cpu.pprof")); err == nil {
		t.Fatal("expected an error for a path in a nonexistent directory")
	}
}

func TestStartStopTraceWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exec.trace")
	if err := StartTrace(path); err != nil {
		t.Fatalf("StartTrace: %v", err)
	}
	StopTrace()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("trace file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("trace file is empty")
	}
	if traceFile != nil {
		t.Fatal("StopTrace should clear traceFile")
	}
}

package irgen

import (
	"fmt"
	"os"
	"regexp"
)

// callTarget matches a direct call instruction's callee, e.g. the "@puts"
// in `call i32 @puts(i8* %t1)` or `%t2 = call i32 @main()`. Global
// references that aren't calls (e.g. a getelementptr over a string global)
// are never followed by "(", so this never misfires on them.
var callTarget = regexp.MustCompile(`@([A-Za-z_][A-Za-z0-9_]*)\(`)

// Verify structurally checks mod and returns every violation found. A
// well-lowered module always verifies clean; any violation here means the
// Lowerer produced malformed IR, which is treated as an internal bug rather
// than a user-diagnosable error.
func Verify(mod *Module) []string {
	var problems []string
	for _, f := range mod.funcs {
		if !f.Defined {
			continue
		}
		if len(f.Blocks) == 0 {
			problems = append(problems, fmt.Sprintf("function %q has no basic blocks", f.Name))
			continue
		}
		for _, blk := range f.Blocks {
			if !blk.terminated {
				problems = append(problems, fmt.Sprintf("function %q block %q has no terminator", f.Name, blk.Name))
			}
			for _, instr := range blk.Instrs {
				for _, m := range callTarget.FindAllStringSubmatch(instr, -1) {
					name := m[1]
					if _, ok := mod.funcIndex[name]; !ok {
						problems = append(problems, fmt.Sprintf("function %q calls undeclared function %q", f.Name, name))
					}
				}
			}
		}
	}
	return problems
}

// VerifyOrAbort runs Verify and, on any violation, prints the violations and
// terminates the process — mirroring LLVMVerifyModule's
// LLVMAbortProcessAction mode: the core treats verifier rejection as a
// fatal, internal condition, never a recoverable user error.
func VerifyOrAbort(mod *Module) {
	problems := Verify(mod)
	if len(problems) == 0 {
		return
	}
	fmt.Fprintln(os.Stderr, "zigcore: internal error: module verification failed:")
	for _, p := range problems {
		fmt.Fprintln(os.Stderr, "  "+p)
	}
	os.Exit(2)
}

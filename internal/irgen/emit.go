package irgen

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Dump renders the full textual LLVM IR module: target triple, runtime
// declarations are left to callers (none are needed by this grammar),
// string globals, function declarations/definitions, and the accumulated
// debug metadata. This is also what gets written as the optional
// developer-facing dump alongside the object file.
func (m *Module) Dump() string {
	var b strings.Builder
	if m.TargetTriple != "" {
		fmt.Fprintf(&b, "target triple = %q\n\n", m.TargetTriple)
	}
	fmt.Fprintf(&b, "; ModuleID = '%s'\n\n", m.Name)

	for _, g := range m.globals {
		fmt.Fprintf(&b, "@%s = private unnamed_addr constant %s c\"%s\"\n",
			g.Name, ArrayType(len(g.Bytes)), escapeBytes(g.Bytes))
	}
	if len(m.globals) > 0 {
		b.WriteString("\n")
	}

	for _, f := range m.funcs {
		if f.Defined {
			continue
		}
		b.WriteString(declString(f))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, f := range m.funcs {
		if !f.Defined {
			continue
		}
		b.WriteString(defString(f))
		b.WriteString("\n")
	}

	if nodes := m.Debug.Finalize(); len(nodes) > 0 {
		b.WriteString("\n")
		for _, n := range nodes {
			b.WriteString(n)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func attrString(f *Func) string {
	var attrs []string
	if f.NoReturn {
		attrs = append(attrs, "noreturn")
	}
	if f.NoUnwind {
		attrs = append(attrs, "nounwind")
	}
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

func paramTypesString(sig FuncType) string {
	var parts []string
	for _, p := range sig.Params {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, ", ")
}

func declString(f *Func) string {
	return fmt.Sprintf("declare %s @%s(%s)%s", f.Sig.Ret, f.Name, paramTypesString(f.Sig), attrString(f))
}

func defString(f *Func) string {
	var b strings.Builder
	fmt.Fprintf(&b, "define %s @%s(%s)%s {\n", f.Sig.Ret, f.Name, paramTypesString(f.Sig), attrString(f))
	for _, blk := range f.Blocks {
		fmt.Fprintf(&b, "%s:\n", blk.Name)
		for _, instr := range blk.Instrs {
			fmt.Fprintf(&b, "  %s\n", instr)
		}
	}
	b.WriteString("}\n")
	return b.String()
}

func escapeBytes(raw []byte) string {
	var b strings.Builder
	for _, c := range raw {
		if c >= 0x20 && c < 0x7f && c != '"' && c != '\\' {
			b.WriteByte(c)
			continue
		}
		fmt.Fprintf(&b, "\\%02X", c)
	}
	return b.String()
}

// EmitObject writes mod's textual IR to <path>.ll and invokes an external
// `clang`/`llc` toolchain to produce <path>.o. Failure to produce the object
// file is a fatal, internal-bug condition — it terminates the process
// rather than returning a diagnosable error.
func EmitObject(mod *Module, path string) {
	llPath := path + ".ll"
	if err := os.WriteFile(llPath, []byte(mod.Dump()), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "zigcore: unable to write %s: %v\n", llPath, err)
		os.Exit(1)
	}

	objPath := path + ".o"
	compiler, args := objectCompiler(llPath, objPath)
	cmd := exec.Command(compiler, args...)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "zigcore: unable to write object file %s: %v\n", objPath, err)
		os.Exit(1)
	}
}

// objectCompiler prefers llc (pure LLVM-IR-to-object, no C toolchain
// assumptions) and falls back to clang, which also accepts .ll input.
func objectCompiler(llPath, objPath string) (string, []string) {
	if _, err := exec.LookPath("llc"); err == nil {
		return "llc", []string{"-filetype=obj", "-o", objPath, llPath}
	}
	return "clang", []string{"-c", "-x", "ir", "-o", objPath, llPath}
}

package version

import (
	"strings"
	"testing"
)

func TestVersionContainsSemanticParts(t *testing.T) {
	stripped := stripANSI(Version)
	if stripped != "0.1.0-dev" {
		t.Fatalf("Version (stripped) = %q, want %q", stripped, "0.1.0-dev")
	}
}

func TestGitCommitAndBuildDateDefaultEmpty(t *testing.T) {
	if GitCommit != "" {
		t.Fatalf("GitCommit = %q, want empty in a dev build", GitCommit)
	}
	if BuildDate != "" {
		t.Fatalf("BuildDate = %q, want empty in a dev build", BuildDate)
	}
}

// stripANSI removes color.Sprint's escape sequences, if any were emitted
// (fatih/color disables them automatically on a non-terminal writer, but
// this keeps the test independent of that detection).
func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && r == 'm':
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}

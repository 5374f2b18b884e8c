package trace

import (
	"bytes"
	"strings"
	"testing"
)

func TestStreamTracerPhaseLevelFiltersItems(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase)

	tr.Begin(ScopePhase, "lower", "")
	tr.Begin(ScopeItem, "lower:main", "")
	tr.End(ScopePhase, "lower", "1 function")

	out := buf.String()
	if !strings.Contains(out, "lower") || !strings.Contains(out, "1 function") {
		t.Fatalf("expected phase events in output, got:\n%s", out)
	}
	if strings.Contains(out, "lower:main") {
		t.Fatalf("item-scope event should have been filtered at phase level:\n%s", out)
	}
}

func TestParseLevelRejectsUnknown(t *testing.T) {
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
	lvl, err := ParseLevel("detail")
	if err != nil || lvl != LevelDetail {
		t.Fatalf("ParseLevel(detail) = %v, %v", lvl, err)
	}
}

func TestNopTracerDisabled(t *testing.T) {
	if Nop.Enabled() {
		t.Fatal("Nop tracer must report disabled")
	}
}

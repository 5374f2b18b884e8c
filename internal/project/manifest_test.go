package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "zigcore.toml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write zigcore.toml: %v", err)
	}
}

func TestFindWalksUpward(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[build]\nmain = \"src/main.zc\"\n")

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	path, ok, err := Find(nested)
	if err != nil || !ok {
		t.Fatalf("Find: %v, %v, %v", path, ok, err)
	}
	want, _ := filepath.Abs(filepath.Join(root, "zigcore.toml"))
	if path != want {
		t.Fatalf("path = %q, want %q", path, want)
	}
}

func TestFindNoManifestIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	_, ok, err := Find(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no manifest to be found")
	}
}

func TestLoadRejectsMissingBuildMain(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	_, found, err := Load(dir)
	if !found {
		t.Fatal("manifest should be found even though it's invalid")
	}
	if err == nil {
		t.Fatal("expected an error for a manifest missing [build].main")
	}
}

func TestManifestOutputPathDefaults(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[package]\nname = \"demo\"\n\n[build]\nmain = \"src/main.zc\"\n")

	m, found, err := Load(dir)
	if err != nil || !found {
		t.Fatalf("Load: %v, %v", found, err)
	}
	if got := m.OutputPath(); got != "demo" {
		t.Fatalf("OutputPath() = %q, want %q", got, "demo")
	}
	if got, want := m.MainPath(), filepath.Join(dir, "src", "main.zc"); got != want {
		t.Fatalf("MainPath() = %q, want %q", got, want)
	}
}

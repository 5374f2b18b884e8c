// Package project loads the optional zigcore.toml project manifest. Its
// absence is never an error: a bare <file>.zc path on the command line is
// always sufficient to build a Compilation Context when no manifest is
// present.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a parsed zigcore.toml: the entry file, output binary name,
// and whether to link statically.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config is the TOML shape of zigcore.toml.
type Config struct {
	Package PackageConfig `toml:"package"`
	Build   BuildConfig   `toml:"build"`
}

// PackageConfig names the project.
type PackageConfig struct {
	Name string `toml:"name"`
}

// BuildConfig names the entry file, output binary, and link mode.
type BuildConfig struct {
	Main   string `toml:"main"`
	Output string `toml:"output"`
	Static bool   `toml:"static"`
}

// Find walks upward from startDir looking for zigcore.toml, the way `go.mod`
// or `surge.toml` resolution walks up a directory tree. ok is false (with a
// nil error) when no manifest exists anywhere above startDir — that is not
// itself a failure.
func Find(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "zigcore.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// Load finds and parses the manifest starting from startDir. ok is false
// when none exists.
func Load(startDir string) (*Manifest, bool, error) {
	path, ok, err := Find(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	if !meta.IsDefined("build") || strings.TrimSpace(cfg.Build.Main) == "" {
		return nil, true, fmt.Errorf("%s: missing [build].main", path)
	}
	return &Manifest{Path: path, Root: filepath.Dir(path), Config: cfg}, true, nil
}

// MainPath returns the manifest's entry file resolved against its root
// directory.
func (m *Manifest) MainPath() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Build.Main))
}

// OutputPath returns the configured output binary name, defaulting to the
// package name (or "a.out" if even that is unset).
func (m *Manifest) OutputPath() string {
	if out := strings.TrimSpace(m.Config.Build.Output); out != "" {
		return out
	}
	if name := strings.TrimSpace(m.Config.Package.Name); name != "" {
		return name
	}
	return "a.out"
}

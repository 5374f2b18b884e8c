// Package version holds the zigcore CLI's build fingerprint. Version is a
// colorized literal suitable for direct printing; GitCommit and BuildDate
// are populated via -ldflags at release build time and are empty in a dev
// build.
package version

import "github.com/fatih/color"

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = majorColor.Sprint("0") + "." + minorColor.Sprint("1") + "." + patchColor.Sprint("0") + "-dev"

	// GitCommit is an optional git commit hash, injected via -ldflags.
	GitCommit = ""

	// BuildDate is an optional ISO-8601 build timestamp, injected via
	// -ldflags.
	BuildDate = ""
)

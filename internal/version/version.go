// Package version exposes build metadata for the phonedir binary.
package version

import "fmt"

// Version is set at build time:
// go build -ldflags "-X git.home.luguber.info/inful/phonedir/internal/version.Version=v1.0.0".
var Version = "unknown"

// Additional build metadata, also set through ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the metadata on one line for --version.
func String() string {
	return fmt.Sprintf("phonedir %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

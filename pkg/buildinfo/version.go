// Package buildinfo carries the version stamp for adproof binaries.
//
// Release builds inject the values at link time; a plain go build reports
// the dev defaults.
package buildinfo

import "fmt"

// Populated via -ldflags, for example:
//
//	-X github.com/adproof/adproof/pkg/buildinfo.Version=v0.3.0
//	-X github.com/adproof/adproof/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)
//	-X github.com/adproof/adproof/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the stamp for plain output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}

// Template renders the stamp as a cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}

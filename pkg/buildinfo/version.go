// Package buildinfo carries the version stamped into gitcanvas binaries.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/gitcanvas/gitcanvas/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/gitcanvas/gitcanvas/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/gitcanvas/gitcanvas/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the version block printed by `gitcanvas --version`.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent identifies gitcanvas to upstream APIs, e.g. "gitcanvas/v1.2.0".
func UserAgent() string {
	return "gitcanvas/" + Version
}

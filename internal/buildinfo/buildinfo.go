// Package buildinfo carries version metadata stamped in with
//
//	go build -ldflags "-X argand/internal/buildinfo.Version=v1.0.0 ..."
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String returns the full build description printed by -version.
func String() string {
	return fmt.Sprintf("argand %s (commit %s, built %s)", Short(), Commit, Date)
}

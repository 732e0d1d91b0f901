// Package version exposes the build metadata stamped into the voxstitch binary.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X voxstitch/pkg/version.Version=0.3.0 -X voxstitch/pkg/version.Commit=1a2b3c4"
var (
	Version = "dev"  // semantic version
	Commit  = "none" // git commit hash
)

// Info is the resolved version report.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
	Platform  string
}

// Get resolves the build metadata against the current runtime.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String renders the report on one line.
func (i Info) String() string {
	return fmt.Sprintf("voxstitch version %s (commit: %s) %s %s",
		i.Version, i.Commit, i.GoVersion, i.Platform)
}

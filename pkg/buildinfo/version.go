// Package buildinfo reports the version of the breadboard binary.
//
// The variables are injected at link time:
//
//	go build -ldflags "-X github.com/matzehuels/breadboard/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/breadboard/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" \
//	    ./cmd/breadboard
package buildinfo

import (
	"fmt"
	"runtime"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the multi-line build report printed by the version command.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s\ngo: %s %s/%s",
		Version, Commit, Date, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s)\n", Version, Commit)
}

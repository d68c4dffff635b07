package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "dev"
	// Commit is the short git SHA embedded at build time.
	Commit = ""
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = ""
)

// shortCommitLength is the number of SHA characters shown.
const shortCommitLength = 7

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns a human-readable version string with commit, build time and Go version.
func Full() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime := vcsStamp()
		if commit == "" {
			commit = vcsCommit
		}

		if built == "" {
			built = vcsTime
		}
	}

	return fmt.Sprintf("version: %s, commit: %s, built at: %s, go: %s", Version, commit, built, runtime.Version())
}

// vcsStamp reads the revision and commit time recorded by the Go toolchain.
func vcsStamp() (commit, built string) {
	commit, built = "none", "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, built
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > shortCommitLength {
				commit = commit[:shortCommitLength]
			}
		case "vcs.time":
			built = setting.Value
		}
	}

	return commit, built
}

// Package version exposes build metadata of the verifier binary.
//
// Version, Commit and BuildTime are injected via ldflags; local builds fall back
// to the VCS stamp Go embeds in the binary. This is the tool's own version, not
// the product version read from version.h.
package version

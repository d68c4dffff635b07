// Package workspace resolves the repository root the verifier works in.
//
// The root is returned as an absolute path and joined onto every configured
// file; the process working directory is never changed.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/oshokin/plist-version-verifier/internal/config"
)

var (
	// ErrRootNotFound is returned when no candidate directory looks like the repository root.
	ErrRootNotFound = errors.New("cannot find repository root")
	// errNotDirectory is returned when an explicit root is not a directory.
	errNotDirectory = errors.New("not a directory")
)

// Locate returns the repository root for a process started in cwd.
// A cwd named after the project is accepted as is; otherwise the configured
// search paths are tried in order and the first one holding both the build
// descriptor and the marker directory wins.
func Locate(cwd string, cfg *config.Config) (string, error) {
	cwd, err := filepath.Abs(cwd)
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	if filepath.Base(cwd) == cfg.ProjectDir {
		return cwd, nil
	}

	for _, candidate := range cfg.SearchPaths {
		dir := filepath.Join(cwd, filepath.FromSlash(candidate))
		if LooksLikeRoot(dir, cfg) {
			return dir, nil
		}
	}

	return "", fmt.Errorf("%w: please run from the %s directory", ErrRootNotFound, cfg.ProjectDir)
}

// Explicit validates a root given on the command line.
func Explicit(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve root %s: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrRootNotFound, err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s: %w", ErrRootNotFound, abs, errNotDirectory)
	}

	return abs, nil
}

// LooksLikeRoot reports whether dir holds the build descriptor file and the marker directory.
func LooksLikeRoot(dir string, cfg *config.Config) bool {
	descriptor, err := os.Stat(filepath.Join(dir, filepath.FromSlash(cfg.BuildDescriptor)))
	if err != nil || !descriptor.Mode().IsRegular() {
		return false
	}

	marker, err := os.Stat(filepath.Join(dir, filepath.FromSlash(cfg.MarkerDir)))
	if err != nil || !marker.IsDir() {
		return false
	}

	return true
}

// Resolve joins a configured slash-separated path onto root.
func Resolve(root, path string) string {
	return filepath.Join(root, filepath.FromSlash(path))
}

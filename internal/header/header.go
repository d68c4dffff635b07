package header

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Version is the product version quadruplet.
// Parts keep the digits exactly as written, so "04" stays "04".
type Version struct {
	Major    string
	Minor    string
	Revision string
	Patch    string
}

// String joins the parts as major.minor.revision.patch.
func (v Version) String() string {
	return strings.Join([]string{v.Major, v.Minor, v.Revision, v.Patch}, ".")
}

// Fallback is used whenever the header cannot provide all four parts.
//
//nolint:gochecknoglobals // Immutable value type.
var Fallback = Version{Major: "1", Minor: "0", Revision: "0", Patch: "0"}

var (
	//nolint:gochecknoglobals // Compiled once.
	macroPatterns = [...]*regexp.Regexp{
		regexp.MustCompile(`#define VERSION_MAJOR\s+(\d+)`),
		regexp.MustCompile(`#define VERSION_MINOR\s+(\d+)`),
		regexp.MustCompile(`#define VERSION_REVISION\s+(\d+)`),
		regexp.MustCompile(`#define VERSION_PATCH\s+(\d+)`),
	}

	// errMalformedVersion is returned by ParseString for anything but four unsigned integers.
	errMalformedVersion = errors.New("version must be four dot-separated non-negative integers")
)

// ExtractVersion returns the version string defined by the header at path,
// or the fallback when the file is absent or incomplete.
func ExtractVersion(path string) string {
	return ExtractVersionOr(path, Fallback).String()
}

// ExtractVersionOr is ExtractVersion with a caller-provided fallback.
func ExtractVersionOr(path string, fallback Version) Version {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fallback
	}

	v, ok := Parse(string(contents))
	if !ok {
		return fallback
	}

	return v
}

// Parse finds the four VERSION_* macros in content.
// It reports false if any of them is missing or does not fit a uint64.
func Parse(content string) (Version, bool) {
	var parts [len(macroPatterns)]string

	for i, pattern := range macroPatterns {
		match := pattern.FindStringSubmatch(content)
		if match == nil || !isUint(match[1]) {
			return Version{}, false
		}

		parts[i] = match[1]
	}

	return Version{
		Major:    parts[0],
		Minor:    parts[1],
		Revision: parts[2],
		Patch:    parts[3],
	}, true
}

// ParseString parses a dotted quadruplet such as "2.3.4.5".
func ParseString(s string) (Version, error) {
	fields := strings.Split(strings.TrimSpace(s), ".")
	if len(fields) != len(macroPatterns) {
		return Version{}, fmt.Errorf("%q: %w", s, errMalformedVersion)
	}

	for _, field := range fields {
		if !isUint(field) {
			return Version{}, fmt.Errorf("%q: %w", s, errMalformedVersion)
		}
	}

	return Version{Major: fields[0], Minor: fields[1], Revision: fields[2], Patch: fields[3]}, nil
}

// isUint reports whether s is a decimal number that fits a uint64.
func isUint(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)

	return err == nil
}

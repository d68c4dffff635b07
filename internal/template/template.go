// Package template performs the literal placeholder substitution xmake applies to
// Info.plist.template.
package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrTemplateNotFound is returned by Load when the template file does not exist.
var ErrTemplateNotFound = errors.New("template file not found")

// Result is the substituted content and the number of placeholders it replaced.
type Result struct {
	// Content is the template with every placeholder replaced.
	Content string
	// Placeholders is the number of occurrences found before substitution.
	Placeholders int
}

// Load reads the template at path.
func Load(path string) (string, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, path)
		}

		return "", fmt.Errorf("read template %s: %w", path, err)
	}

	return string(contents), nil
}

// Count returns the number of non-overlapping occurrences of placeholder in content.
// An empty placeholder never matches.
func Count(content, placeholder string) int {
	if placeholder == "" {
		return 0
	}

	return strings.Count(content, placeholder)
}

// Substitute replaces every occurrence of placeholder in content with value.
func Substitute(content, placeholder, value string) Result {
	found := Count(content, placeholder)
	if found == 0 {
		return Result{Content: content}
	}

	return Result{
		Content:      strings.ReplaceAll(content, placeholder, value),
		Placeholders: found,
	}
}

package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const placeholder = "${VERSION}"

// TestSubstitute checks the placeholder count and that no token survives.
func TestSubstitute(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		value   string
		found   int
	}{
		{name: "none", content: "<plist/>", value: "2.3.4.5", found: 0},
		{name: "one", content: "<string>${VERSION}</string>", value: "2.3.4.5", found: 1},
		{name: "adjacent", content: "${VERSION}${VERSION}${VERSION}", value: "1.0.0.0", found: 3},
		{name: "empty value", content: "a${VERSION}b", value: "", found: 1},
	}

	for _, tc := range cases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			before := strings.Count(tc.content, tc.value)
			result := Substitute(tc.content, placeholder, tc.value)

			require.Equal(t, tc.found, result.Placeholders)
			require.Zero(t, Count(result.Content, placeholder))

			if tc.value != "" {
				require.Equal(t, before+tc.found, strings.Count(result.Content, tc.value))
			}
		})
	}
}

// TestSubstituteIsNoOpWithoutPlaceholders ensures re-running substitution changes nothing.
func TestSubstituteIsNoOpWithoutPlaceholders(t *testing.T) {
	t.Parallel()

	first := Substitute("<string>${VERSION}</string>", placeholder, "2.3.4.5")
	second := Substitute(first.Content, placeholder, "9.9.9.9")

	require.Equal(t, first.Content, second.Content)
	require.Zero(t, second.Placeholders)
}

// TestCountEmptyPlaceholder ensures an empty token is never counted.
func TestCountEmptyPlaceholder(t *testing.T) {
	t.Parallel()

	require.Zero(t, Count("abc", ""))
	require.Equal(t, "abc", Substitute("abc", "", "x").Content)
}

// TestLoad covers an existing and a missing template.
func TestLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "Info.plist.template")
	require.NoError(t, os.WriteFile(path, []byte("${VERSION}"), 0o600))

	content, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "${VERSION}", content)

	_, err = Load(filepath.Join(dir, "missing.template"))
	require.ErrorIs(t, err, ErrTemplateNotFound)
	require.Contains(t, err.Error(), "missing.template")
}

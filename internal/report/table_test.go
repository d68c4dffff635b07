package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/plist-version-verifier/internal/domain/verification"
)

// TestRender ensures every step and the outcome appear in the table.
func TestRender(t *testing.T) {
	text.DisableColors()

	r := verification.NewReport("run")
	r.Version = "2.3.4.5"
	r.Add(verification.StepExtract, "mods/src/version.h", "1. Extracted version: 2.3.4.5")
	r.Add(verification.StepFindTemplate, "macos-launcher/src/Info.plist.template", "2. Found template file")

	var buf bytes.Buffer
	Render(&buf, r)

	out := buf.String()
	require.Contains(t, out, "2.3.4.5")
	require.Contains(t, out, string(verification.StepExtract))
	require.Contains(t, out, string(verification.StepFindTemplate))
	require.Contains(t, out, "OK")
	require.Contains(t, out, "Result: all checks passed")

	_ = r.Fail(verification.StepField, "CFBundleVersion", errors.New("CFBundleVersion not found in Info.plist"))

	buf.Reset()
	Render(&buf, r)

	out = buf.String()
	require.Contains(t, out, "FAILED")
	require.Contains(t, out, "Result: CFBundleVersion not found in Info.plist")
}

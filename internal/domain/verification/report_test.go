package verification

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestReportKeepsFirstError verifies ordering and that only the first failure is kept.
func TestReportKeepsFirstError(t *testing.T) {
	t.Parallel()

	var (
		first  = errors.New("first")
		second = errors.New("second")
	)

	r := NewReport("run")
	require.True(t, r.Succeeded())

	r.Add(StepExtract, "mods/src/version.h", "1. Extracted version: 2.3.4.5")
	require.ErrorIs(t, r.Fail(StepFindTemplate, "Info.plist.template", first), first)
	require.ErrorIs(t, r.Fail(StepCleanup, "Info.plist", second), second)

	require.False(t, r.Succeeded())
	require.ErrorIs(t, r.Err, first)

	want := []Step{StepExtract, StepFindTemplate, StepCleanup}
	if diff := cmp.Diff(want, r.Steps()); diff != "" {
		t.Fatalf("steps mismatch (-want +got):\n%s", diff)
	}

	require.Equal(t, StatusFailed, r.Events[1].Status)
	require.Equal(t, "first", r.Events[1].Message)
}

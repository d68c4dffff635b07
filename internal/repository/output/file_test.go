package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFileRepository_NotFound verifies Load returns ErrNotFound for a missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "Info.plist"))

	content, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Empty(t, content)

	removed, err := repo.Remove(context.Background())
	require.NoError(t, err)
	require.False(t, removed)
}

// TestFileRepository_SaveOverwritesAndRemoves covers the full lifecycle of the generated file.
func TestFileRepository_SaveOverwritesAndRemoves(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "Info.plist")
	require.NoError(t, os.WriteFile(file, []byte("stale and much longer content"), 0o600))

	repo := NewFileRepository(file)
	require.Equal(t, file, repo.Path())
	require.NoError(t, repo.Save(ctx, "<plist/>"))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, "<plist/>", got)

	removed, err := repo.Remove(ctx)
	require.NoError(t, err)
	require.True(t, removed)

	_, err = os.Stat(file)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestFileRepository_RemoveSkipsDirectories ensures a directory at the output path is left alone.
func TestFileRepository_RemoveSkipsDirectories(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "Info.plist")
	require.NoError(t, os.Mkdir(dir, 0o755))

	removed, err := NewFileRepository(dir).Remove(context.Background())
	require.NoError(t, err)
	require.False(t, removed)
	require.DirExists(t, dir)
}

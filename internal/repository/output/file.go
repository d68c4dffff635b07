package output

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Repository defines the operations the verifier needs on the generated file.
type Repository interface {
	Path() string
	Save(ctx context.Context, content string) error
	Load(ctx context.Context) (string, error)
	Remove(ctx context.Context) (bool, error)
}

// DefaultFileMode is the permission of the generated manifest.
const DefaultFileMode os.FileMode = 0o644

// ErrNotFound is returned by Load when the file has not been written.
var ErrNotFound = errors.New("output file not found")

// FileRepository stores the generated content at a fixed path.
type FileRepository struct {
	// path is the filesystem location of the generated file.
	path string
}

// NewFileRepository creates a repository that writes to path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Path returns the location of the generated file.
func (r *FileRepository) Path() string {
	return r.path
}

// Save overwrites the file with content.
func (r *FileRepository) Save(_ context.Context, content string) error {
	if err := os.WriteFile(r.path, []byte(content), DefaultFileMode); err != nil {
		return fmt.Errorf("write output file: %w", err)
	}

	return nil
}

// Load reads the file back.
func (r *FileRepository) Load(_ context.Context) (string, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("read output file: %w", err)
	}

	return string(contents), nil
}

// Remove deletes the file if it exists and reports whether it did.
func (r *FileRepository) Remove(_ context.Context) (bool, error) {
	info, err := os.Stat(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("stat output file: %w", err)
	}

	// Only regular files are generated here.
	if !info.Mode().IsRegular() {
		return false, nil
	}

	if err = os.Remove(r.path); err != nil {
		return false, fmt.Errorf("remove output file: %w", err)
	}

	return true, nil
}

// Package fsxlocal implements fsx.FileSystem on a single local directory.
package fsxlocal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/talentgate/jobportal/pkg/fsx"
)

// LocalFileSystem stores files in one flat directory. Names are validated
// before every operation; subdirectories are never created or traversed.
type LocalFileSystem struct {
	dir string
}

// NewLocalFileSystem creates the base directory if needed and returns a
// store rooted at it.
func NewLocalFileSystem(dir string) (*LocalFileSystem, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("fsxlocal: create base dir: %w", err)
	}
	return &LocalFileSystem{dir: dir}, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, name string, data []byte) error {
	if err := fsx.ValidateFilename(name); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(l.dir, name), data, 0o644)
}

func (l *LocalFileSystem) OpenFile(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := fsx.ValidateFilename(name); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fsx.ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

func (l *LocalFileSystem) DeleteFile(ctx context.Context, name string) error {
	if err := fsx.ValidateFilename(name); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.dir, name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fsx.ErrNotFound
		}
		return err
	}
	return nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, name string) (bool, error) {
	if err := fsx.ValidateFilename(name); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(l.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

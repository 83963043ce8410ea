// Package fsx abstracts the resume file store behind a small interface so
// services never touch the filesystem layout directly.
package fsx

import (
	"context"
	"errors"
	"io"
	"strings"
)

var (
	// ErrInvalidFilename is returned for names that could escape the
	// store's flat namespace.
	ErrInvalidFilename = errors.New("fsx: invalid filename")

	// ErrNotFound is returned when no file exists under the given name.
	ErrNotFound = errors.New("fsx: file not found")
)

// FileSystem is a flat, name-addressed file store.
type FileSystem interface {
	WriteFile(ctx context.Context, name string, data []byte) error
	OpenFile(ctx context.Context, name string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
}

// ValidateFilename rejects names containing a parent-directory segment or
// any path separator. The check is character-level, applied before any
// filesystem lookup; it is the only traversal defense the store has.
func ValidateFilename(name string) error {
	if name == "" {
		return ErrInvalidFilename
	}
	if strings.Contains(name, "..") {
		return ErrInvalidFilename
	}
	if strings.ContainsAny(name, `/\`) {
		return ErrInvalidFilename
	}
	return nil
}

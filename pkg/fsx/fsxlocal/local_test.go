package fsxlocal

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/talentgate/jobportal/pkg/fsx"
)

func TestLocalFileSystemRoundtrip(t *testing.T) {
	store, err := NewLocalFileSystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalFileSystem: %v", err)
	}
	ctx := context.Background()

	if err := store.WriteFile(ctx, "resume.pdf", []byte("content")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	exists, err := store.Exists(ctx, "resume.pdf")
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v, want true, nil", exists, err)
	}

	f, err := store.OpenFile(ctx, "resume.pdf")
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	data, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("read %q, want %q", data, "content")
	}

	if err := store.DeleteFile(ctx, "resume.pdf"); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	exists, err = store.Exists(ctx, "resume.pdf")
	if err != nil || exists {
		t.Fatalf("Exists after delete = %v, %v, want false, nil", exists, err)
	}
}

func TestLocalFileSystemMissingFile(t *testing.T) {
	store, err := NewLocalFileSystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalFileSystem: %v", err)
	}
	ctx := context.Background()

	if _, err := store.OpenFile(ctx, "missing.pdf"); !errors.Is(err, fsx.ErrNotFound) {
		t.Fatalf("OpenFile missing = %v, want ErrNotFound", err)
	}
	if err := store.DeleteFile(ctx, "missing.pdf"); !errors.Is(err, fsx.ErrNotFound) {
		t.Fatalf("DeleteFile missing = %v, want ErrNotFound", err)
	}
}

func TestLocalFileSystemRejectsTraversal(t *testing.T) {
	store, err := NewLocalFileSystem(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalFileSystem: %v", err)
	}
	ctx := context.Background()

	for _, name := range []string{"../escape.txt", "sub/file.txt", `..\escape.txt`} {
		if err := store.WriteFile(ctx, name, []byte("x")); !errors.Is(err, fsx.ErrInvalidFilename) {
			t.Errorf("WriteFile(%q) = %v, want ErrInvalidFilename", name, err)
		}
		if _, err := store.OpenFile(ctx, name); !errors.Is(err, fsx.ErrInvalidFilename) {
			t.Errorf("OpenFile(%q) = %v, want ErrInvalidFilename", name, err)
		}
		if err := store.DeleteFile(ctx, name); !errors.Is(err, fsx.ErrInvalidFilename) {
			t.Errorf("DeleteFile(%q) = %v, want ErrInvalidFilename", name, err)
		}
	}
}

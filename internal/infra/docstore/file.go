package docstore

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"restaurant-booking/internal/pkg/errs"
)

// FileBackend stores each document as <dir>/<name>.json.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errs.Wrapf(err, "create data dir %q", dir)
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) Name() string { return "file" }

func (f *FileBackend) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}

func (f *FileBackend) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrDocumentMissing
	}
	return data, errs.Wrapf(err, "read %s", name)
}

// Write replaces the document atomically: readers see the old or the new file, never a torn one.
func (f *FileBackend) Write(_ context.Context, name string, data []byte) error {
	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return errs.Wrapf(err, "create temp file for %s", name)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errs.Wrapf(err, "write %s", name)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return errs.Wrapf(err, "sync %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errs.Wrapf(err, "close %s", name)
	}
	return errs.Wrapf(os.Rename(tmpName, f.path(name)), "replace %s", name)
}

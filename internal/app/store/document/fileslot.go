// internal/app/store/document/fileslot.go
package document

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileSlot persists the document as a single JSON file on disk. This is
// the local-prototype backend.
type FileSlot struct {
	path string
}

// NewFileSlot creates a FileSlot at the given path. Parent directories are
// created on first save.
func NewFileSlot(path string) *FileSlot {
	return &FileSlot{path: path}
}

// Load reads the whole file. A missing file means "no data", not an error.
func (s *FileSlot) Load(ctx context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Save overwrites the file with the payload. It writes to a temp file in
// the same directory and renames so a crash mid-write never leaves a
// half-written document behind.
func (s *FileSlot) Save(ctx context.Context, payload []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}

// Package export writes rendered catalogs to disk.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jorge-barreto/notes/internal/catalog"
	"github.com/jorge-barreto/notes/internal/render"
)

// File renders cat with r and atomically replaces path with the result.
// It returns the number of bytes written.
func File(path string, r render.Renderer, cat *catalog.Catalog) (int, error) {
	data := []byte(render.Catalog(r, cat))
	if err := writeFileAtomic(path, data, 0644); err != nil {
		return 0, fmt.Errorf("exporting to %s: %w", path, err)
	}
	return len(data), nil
}

// writeFileAtomic writes data to a temporary file in the target directory,
// fsyncs it, and renames it over path. Readers see either the old file or
// the complete new one.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, perm); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

package buffer

import (
	"errors"
	"fmt"

	"github.com/dshills/kiln/internal/vfs"
)

// FileMode is the permission used when saving creates a file.
const FileMode = 0644

// ErrNoFilename is returned by Save for an unnamed document.
var ErrNoFilename = errors.New("document has no file name")

// Load reads path from fsys into a clean document named path.
func Load(fsys vfs.FS, path string) (*Document, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	d := NewDocumentFromString(string(data))
	d.filename = path
	return d, nil
}

// Save writes the serialized document to its file, overwriting it, and
// returns the number of bytes written. The dirty counter is reset only when
// the write succeeds.
func (d *Document) Save(fsys vfs.FS) (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}
	data := d.Bytes()
	if err := fsys.WriteFile(d.filename, data, FileMode); err != nil {
		return 0, fmt.Errorf("writing %s: %w", d.filename, err)
	}
	d.dirty = 0
	return len(data), nil
}

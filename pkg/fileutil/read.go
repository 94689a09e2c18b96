package fileutil

import (
	"io"
	"os"

	"github.com/mdnote/mdnote/internal/errors"
)

// MaxNoteSize caps how much of a note file we will read (4MB). Notes
// larger than this are almost certainly not Markdown notes, and the
// cap keeps a stray binary from exhausting memory during vault scans.
const MaxNoteSize = 4 * 1024 * 1024

// ErrFileTooLarge indicates that a file exceeded MaxNoteSize.
var ErrFileTooLarge = errors.Newf("file exceeds maximum size of %d bytes", MaxNoteSize)

// ReadFileWithLimit reads a file up to MaxNoteSize. It returns
// ErrFileTooLarge when the file is larger than the limit.
func ReadFileWithLimit(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	// fail fast when the size is already known to be over the cap
	if info, err := f.Stat(); err == nil && info.Size() > MaxNoteSize {
		return nil, ErrFileTooLarge
	}

	r := io.LimitReader(f, MaxNoteSize+1)
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}

	if len(data) > MaxNoteSize {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

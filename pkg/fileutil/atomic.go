// Package fileutil provides the file system primitives the note
// commands build on: atomic writes and size-limited reads.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/mdnote/mdnote/internal/errors"
)

// AtomicWriteFile writes data to path via a temp file and rename, so
// an interrupted write never leaves a half-written note behind.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// temp file must live in the same directory so the rename stays on
	// one filesystem
	tmp, err := os.CreateTemp(dir, ".mdnote-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	tmpName := tmp.Name()
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteString is AtomicWriteFile for text content with the
// default note permissions.
func AtomicWriteString(path, content string) error {
	return AtomicWriteFile(path, []byte(content), 0644)
}

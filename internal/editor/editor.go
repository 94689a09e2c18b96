// Package editor provides utilities for launching the user's preferred
// text editor on a note.
package editor

import (
	"os"
	"os/exec"

	"github.com/mdnote/mdnote/internal/errors"
)

// Open launches an editor for the given path. preferred is the editor
// from the mdnote config and takes precedence; when empty the fallback
// chain is $EDITOR, $VISUAL, nano, vi.
func Open(path, preferred string) error {
	cmd := exec.Command(detectEditor(preferred), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}

	return nil
}

func detectEditor(preferred string) string {
	if preferred != "" {
		return preferred
	}

	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}

	// nano is the friendlier fallback when present
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	// vi is available on all Unix systems
	return "vi"
}

package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/mdnote/mdnote/internal/errors"
	"github.com/mdnote/mdnote/internal/paths"
	"github.com/mdnote/mdnote/internal/vault"
)

// resolveVault returns the vault root: the --vault flag wins, then the
// config file (which viper already merged with MDNOTE_VAULT).
func resolveVault() (string, error) {
	configured := vaultFlag
	if configured == "" {
		configured = cfg.Vault
	}
	root, err := paths.ResolveVault(configured)
	if err != nil {
		return "", errors.NewUserError(err, "set the vault with --vault, MDNOTE_VAULT, or the config file")
	}
	return root, nil
}

// resolveNote locates a note from a command argument. The argument may
// be a path to an existing file, a vault-relative path (with or
// without the .md extension), or a title to search for.
func resolveNote(root, arg string) (*vault.Note, error) {
	candidates := []string{
		arg,
		filepath.Join(root, arg),
		filepath.Join(root, arg+".md"),
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return vault.Load(root, path)
		}
	}

	// fall back to a title search over the vault
	scanner := vault.NewScanner(nil, cfg.Exclude)
	notes, _, err := scanner.Scan(root)
	if err != nil {
		return nil, err
	}
	matches := vault.Search(notes, arg, vault.SearchOptions{})
	switch len(matches) {
	case 0:
		return nil, errors.NewUserError(
			errors.Wrapf(errors.ErrNoteNotFound, "%q", arg),
			"run 'mdnote list' to see available notes")
	case 1:
		return &matches[0], nil
	default:
		names := make([]string, 0, len(matches))
		for i, m := range matches {
			if i == 5 {
				names = append(names, "...")
				break
			}
			names = append(names, m.Rel)
		}
		return nil, errors.NewUserError(
			errors.Newf("%q matches %d notes: %s", arg, len(matches), strings.Join(names, ", ")),
			"give a more specific name or path")
	}
}

// pickNote runs an interactive fuzzy picker over the notes.
func pickNote(notes []vault.Note) (*vault.Note, error) {
	if len(notes) == 0 {
		return nil, errors.NewUserError(errors.ErrNoteNotFound, "the vault has no notes")
	}

	idx, err := fuzzyfinder.Find(
		notes,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", notes[i].Title(), notes[i].Rel)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			n := notes[i]
			return fmt.Sprintf("Title: %s\nPath: %s\nTags: %s\n\n%s",
				n.Title(),
				n.Rel,
				strings.Join(n.Tags(), ", "),
				truncate(n.Doc.Body, 500),
			)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return &notes[idx], nil
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

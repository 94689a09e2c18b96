// Package vault provides discovery and indexing of the Markdown notes
// in a vault directory: walking the tree, parsing each note's
// frontmatter, and searching the result.
package vault

import (
	"path/filepath"
	"strings"

	"github.com/mdnote/mdnote/pkg/frontmatter"
)

// Note is one Markdown file in the vault with its parsed frontmatter.
type Note struct {
	// Path is the absolute path of the note file.
	Path string

	// Rel is the path relative to the vault root.
	Rel string

	// Doc holds the parsed frontmatter and body.
	Doc *frontmatter.Document
}

// Title returns the note's display title: the frontmatter title field
// when present, otherwise the file name without its extension.
func (n *Note) Title() string {
	if n.Doc != nil {
		if t := n.Doc.Text("title"); t != "" {
			return t
		}
	}
	base := filepath.Base(n.Rel)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Tags returns the note's tags from frontmatter, nil when untagged.
func (n *Note) Tags() []string {
	if n.Doc == nil {
		return nil
	}
	return n.Doc.Strings("tags")
}

// Aliases returns alternate names from the frontmatter aliases field,
// nil when the note has none.
func (n *Note) Aliases() []string {
	if n.Doc == nil {
		return nil
	}
	return n.Doc.Strings("aliases")
}

// HasTag reports whether the note carries the given tag,
// case-insensitively.
func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// Issue records a note that could not be read or parsed during a scan.
type Issue struct {
	// Rel is the vault-relative path of the offending file.
	Rel string

	// Err is the read or parse failure.
	Err error
}

// Package frontmatter locates and rewrites the delimited metadata
// block at the top of Markdown notes. The block's content is parsed
// with the miniyaml dialect; this package only knows about the "---"
// fences and the note body, which miniyaml itself never sees.
package frontmatter

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/mdnote/mdnote/pkg/miniyaml"
)

// Delimiter is the fence line bounding a frontmatter block.
const Delimiter = "---"

// Sentinel errors for frontmatter extraction.
var (
	// ErrNoFrontmatter is returned by MustParse when the note does not
	// open with a frontmatter fence.
	ErrNoFrontmatter = errors.New("no frontmatter found")

	// ErrUnclosed indicates an opening fence without a closing one.
	ErrUnclosed = errors.New("missing closing frontmatter delimiter")
)

// Document pairs a note's parsed metadata with its body.
type Document struct {
	// Matter is the parsed frontmatter value, normally a mapping.
	// It is null when the note has no frontmatter block.
	Matter miniyaml.Value

	// Body is the note content after the closing fence, verbatim.
	Body string

	// Present reports whether a frontmatter block was found.
	Present bool
}

// Split extracts the raw frontmatter text and the body from a note.
// The note must open with a "---" line for a block to be recognized;
// both LF and CRLF line endings are handled. When no block is present
// the whole content is returned as body with found == false.
func Split(content string) (matter, body string, found bool, err error) {
	first, rest, hasMore := strings.Cut(content, "\n")
	if strings.TrimRight(first, "\r") != Delimiter || !hasMore {
		return "", content, false, nil
	}

	offset := 0
	for {
		end := strings.IndexByte(rest[offset:], '\n')
		var ln string
		if end >= 0 {
			ln = rest[offset : offset+end]
		} else {
			ln = rest[offset:]
		}
		if strings.TrimRight(ln, "\r") == Delimiter {
			body := ""
			if end >= 0 {
				body = rest[offset+end+1:]
			}
			return rest[:offset], body, true, nil
		}
		if end < 0 {
			return "", content, false, errors.WithStack(ErrUnclosed)
		}
		offset += end + 1
	}
}

// Parse splits a note and parses its frontmatter block. Notes without
// a block yield a Document with a null Matter and the full content as
// Body, which callers may treat as "no frontmatter".
func Parse(content string) (*Document, error) {
	matter, body, found, err := Split(content)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Document{Matter: miniyaml.Null(), Body: body}, nil
	}
	v, err := miniyaml.Parse(matter)
	if err != nil {
		return nil, errors.Wrap(err, "parsing frontmatter")
	}
	return &Document{Matter: v, Body: body, Present: true}, nil
}

// MustParse is like Parse but fails when the note has no frontmatter
// block, for callers that require one.
func MustParse(content string) (*Document, error) {
	d, err := Parse(content)
	if err != nil {
		return nil, err
	}
	if !d.Present {
		return nil, errors.WithStack(ErrNoFrontmatter)
	}
	return d, nil
}

// Render serializes the document back to note text: the dumped
// frontmatter wrapped in fences, followed by the body verbatim. Notes
// without frontmatter render as their body alone. Non-empty output
// always ends with a newline.
func (d *Document) Render() string {
	var b strings.Builder
	if d.Present {
		b.WriteString(Delimiter)
		b.WriteByte('\n')
		// a null or empty-mapping matter renders as an empty block
		empty := d.Matter.IsNull() ||
			(d.Matter.Kind() == miniyaml.KindMapping && d.Matter.Len() == 0)
		if !empty {
			b.WriteString(miniyaml.Dump(d.Matter))
			b.WriteByte('\n')
		}
		b.WriteString(Delimiter)
		b.WriteByte('\n')
	}
	b.WriteString(d.Body)
	out := b.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

// Get looks up a frontmatter field.
func (d *Document) Get(key string) (miniyaml.Value, bool) {
	return d.Matter.Get(key)
}

// Set inserts or updates a frontmatter field, preserving field order
// for existing keys. Setting a field on a note without frontmatter
// creates the block.
func (d *Document) Set(key string, v miniyaml.Value) {
	d.Matter.Set(key, v)
	d.Present = true
}

// Delete removes a frontmatter field, reporting whether it existed.
func (d *Document) Delete(key string) bool {
	return d.Matter.Delete(key)
}

// Text returns a field's scalar text, or "" when absent.
func (d *Document) Text(key string) string {
	v, ok := d.Matter.Get(key)
	if !ok || v.IsNull() {
		return ""
	}
	return v.String()
}

// Strings returns a field as a list of strings: sequences yield their
// elements' text, a scalar yields a one-element list, and absent or
// null fields yield nil.
func (d *Document) Strings(key string) []string {
	v, ok := d.Matter.Get(key)
	if !ok || v.IsNull() {
		return nil
	}
	if v.Kind() == miniyaml.KindSequence {
		out := make([]string, 0, v.Len())
		for _, el := range v.Elems() {
			out = append(out, el.String())
		}
		return out
	}
	return []string{v.String()}
}

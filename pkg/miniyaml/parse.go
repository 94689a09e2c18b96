package miniyaml

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Parse decodes text in the frontmatter dialect into a Value tree.
// An empty (or all-blank, all-comment) document parses to null. A
// leading dash item yields a sequence document, a leading key: value
// yields a mapping document, and anything else yields a scalar
// document. Malformed input fails the whole call with an error
// wrapping one of the package sentinels.
func Parse(text string) (Value, error) {
	p := &parser{lines: readLines(text)}
	return p.parseDocument()
}

// parser walks the line records in order. The indentation structure is
// handled by passing each container's baseline indent down the call
// stack; a line shallower than the current baseline returns control to
// the enclosing container.
type parser struct {
	lines []line
	pos   int
}

func (p *parser) done() bool { return p.pos >= len(p.lines) }

// next returns the upcoming content line without consuming it, first
// skipping blank and pure-comment lines. Block scalars bypass this and
// read raw lines, because they keep blanks and comments verbatim.
func (p *parser) next() (line, bool) {
	for !p.done() {
		ln := p.lines[p.pos]
		if ln.blank() || ln.commentOnly() {
			p.pos++
			continue
		}
		return ln, true
	}
	return line{}, false
}

func isDashItem(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// isFlowOpener reports whether content starts an inline flow
// collection. A flow literal is never a mapping entry, even when its
// text contains a separator, so this check must run before any
// splitEntry classification.
func isFlowOpener(content string) bool {
	return strings.HasPrefix(content, "[") || strings.HasPrefix(content, "{")
}

func isEntry(content string) bool {
	_, _, ok := splitEntry(content)
	return ok
}

func (p *parser) parseDocument() (Value, error) {
	first, ok := p.next()
	if !ok {
		return Null(), nil
	}
	if first.indent != 0 {
		return Null(), errors.Wrapf(ErrIndentation, "line %d: document root must start at column 0", first.num)
	}

	var (
		doc Value
		err error
	)
	switch {
	case isDashItem(first.content):
		doc, err = p.parseSequence(0)
	case !isFlowOpener(first.content) && isEntry(first.content):
		doc, err = p.parseMapping(0)
	default:
		p.pos++
		doc, err = p.parseEntryValue(first.content, 0, 1, false)
	}
	if err != nil {
		return Null(), err
	}
	if ln, ok := p.next(); ok {
		return Null(), errors.Wrapf(ErrIndentation, "line %d: unexpected content after document", ln.num)
	}
	return doc, nil
}

// parseMapping consumes mapping entries at exactly the baseline
// indent. It returns when a shallower line (or EOF) is reached; a
// deeper line at entry position is an indentation fault.
func (p *parser) parseMapping(base int) (Value, error) {
	m := Map()
	for {
		ln, ok := p.next()
		if !ok || ln.indent < base {
			break
		}
		if ln.indent > base {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: entry indented past its mapping", ln.num)
		}
		key, rest, ok := splitEntry(ln.content)
		if !ok {
			return Null(), errors.Wrapf(ErrKeyFormat, "line %d: %q", ln.num, ln.content)
		}
		p.pos++
		v, err := p.parseEntryValue(rest, ln.indent, ln.indent, true)
		if err != nil {
			return Null(), err
		}
		m.Set(key, v)
	}
	return m, nil
}

// parseSequence consumes dash items at exactly itemIndent.
func (p *parser) parseSequence(itemIndent int) (Value, error) {
	seq := Seq()
	for {
		ln, ok := p.next()
		if !ok || ln.indent < itemIndent {
			break
		}
		if ln.indent > itemIndent {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: sequence item indented past its sequence", ln.num)
		}
		if !isDashItem(ln.content) {
			break
		}
		p.pos++
		rest := strings.TrimSpace(strings.TrimPrefix(ln.content, "-"))
		item, err := p.parseItemValue(rest, ln.indent)
		if err != nil {
			return Null(), err
		}
		seq.Append(item)
	}
	return seq, nil
}

// parseItemValue resolves a sequence item's value. Items mirror
// mapping-entry values except that pipe block scalars are not a
// supported item form, and an item may open an inline nested mapping
// ("- key: value").
func (p *parser) parseItemValue(rest string, itemIndent int) (Value, error) {
	if rest == "" {
		return p.parseDeferred(itemIndent, itemIndent+1)
	}
	if !isFlowOpener(rest) {
		if key, r, ok := splitEntry(rest); ok {
			return p.parseItemMapping(key, r, itemIndent)
		}
	}
	return p.parseEntryValue(rest, itemIndent, itemIndent+1, false)
}

// parseItemMapping parses a mapping that begins inline on a dash item.
// Further entries of the same mapping sit one step past the dash.
func (p *parser) parseItemMapping(key, rest string, itemIndent int) (Value, error) {
	eff := itemIndent + 2
	m := Map()
	v, err := p.parseEntryValue(rest, eff, eff, true)
	if err != nil {
		return Null(), err
	}
	m.Set(key, v)
	for {
		ln, ok := p.next()
		if !ok || ln.indent < eff {
			break
		}
		if ln.indent > eff {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: entry indented past its mapping", ln.num)
		}
		k, r, ok := splitEntry(ln.content)
		if !ok {
			return Null(), errors.Wrapf(ErrKeyFormat, "line %d: %q", ln.num, ln.content)
		}
		p.pos++
		nv, err := p.parseEntryValue(r, eff, eff, true)
		if err != nil {
			return Null(), err
		}
		m.Set(k, nv)
	}
	return m, nil
}

// parseEntryValue resolves a value from its inline remainder and any
// following deeper lines. keyIndent is the indent of the owning line;
// seqMin is the minimum indent at which dash items may start a
// deferred sequence (a sequence under a mapping key may sit at the
// key's own indent).
func (p *parser) parseEntryValue(rest string, keyIndent, seqMin int, allowBlock bool) (Value, error) {
	rest = strings.TrimSpace(rest)
	if allowBlock && strings.HasPrefix(rest, "|") {
		return p.parseBlockScalar(keyIndent), nil
	}
	rest = strings.TrimSpace(stripTrailingComment(rest))
	if rest == "" {
		return p.parseDeferred(keyIndent, seqMin)
	}
	if strings.HasPrefix(rest, "[") || strings.HasPrefix(rest, "{") {
		v, err := parseFlow(rest)
		if err != nil {
			return Null(), err
		}
		if ln, ok := p.next(); ok && ln.indent > keyIndent {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: unexpected indent under inline value", ln.num)
		}
		return v, nil
	}
	if (rest[0] == '"' || rest[0] == '\'') && quoteUnclosed(rest) {
		return p.parseFolded(rest, keyIndent)
	}
	v, err := resolveScalar(rest)
	if err != nil {
		return Null(), err
	}
	if ln, ok := p.next(); ok && ln.indent > keyIndent {
		if v.Kind() != KindString || isEntry(ln.content) || isDashItem(ln.content) {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: unexpected indent under scalar value", ln.num)
		}
		return p.parseFolded(rest, keyIndent)
	}
	return v, nil
}

// parseDeferred resolves an entry or item whose inline remainder is
// empty by inspecting the following lines: dash items yield a
// sequence, deeper mapping entries yield a nested mapping, a deeper
// flow literal is decoded inline, deeper plain text folds into the
// value, and anything else leaves the value explicitly null. Dash
// items are accepted at most one indent step past the key.
func (p *parser) parseDeferred(keyIndent, seqMin int) (Value, error) {
	ln, ok := p.next()
	if !ok {
		return Null(), nil
	}
	if isDashItem(ln.content) {
		if ln.indent >= seqMin && ln.indent <= keyIndent+indentStep {
			return p.parseSequence(ln.indent)
		}
		if ln.indent > keyIndent+indentStep {
			return Null(), errors.Wrapf(ErrIndentation, "line %d: sequence item indented too far under its key", ln.num)
		}
	}
	if ln.indent <= keyIndent {
		return Null(), nil
	}
	if isFlowOpener(ln.content) {
		p.pos++
		return p.parseEntryValue(ln.content, ln.indent, ln.indent+1, false)
	}
	if isEntry(ln.content) {
		return p.parseMapping(ln.indent)
	}
	p.pos++
	return p.parseFolded(stripTrailingComment(ln.content), keyIndent)
}

// parseFolded joins a scalar spread over continuation lines deeper
// than the key's indent with single spaces. Comment-only continuation
// lines are dropped and mixed lines lose their comment portion, except
// inside an open quoted span, which is taken verbatim until the quote
// closes. The fold stops at the first line at or below the key's
// indent.
func (p *parser) parseFolded(first string, keyIndent int) (Value, error) {
	var pieces []string // resolved pieces
	var span []string   // pending pieces of an open quoted span

	push := func(tok string) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return
		}
		if len(span) > 0 {
			span = append(span, tok)
			joined := strings.Join(span, " ")
			if !quoteUnclosed(joined) {
				pieces = append(pieces, ParseString(joined))
				span = nil
			}
			return
		}
		if (tok[0] == '"' || tok[0] == '\'') && quoteUnclosed(tok) {
			span = []string{tok}
			return
		}
		pieces = append(pieces, ParseString(tok))
	}

	push(first)
	for !p.done() {
		ln := p.lines[p.pos]
		if ln.blank() {
			p.pos++
			continue
		}
		if ln.indent <= keyIndent {
			break
		}
		p.pos++
		c := ln.content
		if len(span) == 0 {
			if ln.commentOnly() {
				continue
			}
			c = stripTrailingComment(c)
		}
		push(c)
	}
	if len(span) > 0 {
		return Null(), errors.Wrap(ErrUnterminatedLiteral, "unclosed quote in folded scalar")
	}
	return String(strings.Join(pieces, " ")), nil
}

// parseBlockScalar consumes the lines of a pipe block scalar: every
// following line strictly deeper than the key's indent, verbatim.
// Comments are not stripped and indentation beyond the first consumed
// line is preserved as literal spaces. Blank lines inside the block
// become empty lines; leading and trailing blanks are dropped.
func (p *parser) parseBlockScalar(keyIndent int) Value {
	var parts []string
	base := -1
	for !p.done() {
		ln := p.lines[p.pos]
		if ln.blank() {
			p.pos++
			parts = append(parts, "")
			continue
		}
		if ln.indent <= keyIndent {
			break
		}
		p.pos++
		if base < 0 {
			base = ln.indent
		}
		pad := ln.indent - base
		if pad < 0 {
			pad = 0
		}
		parts = append(parts, strings.Repeat(" ", pad)+ln.content)
	}
	for len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return String(strings.Join(parts, "\n"))
}

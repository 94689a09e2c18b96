package miniyaml

import (
	"strconv"
	"strings"
)

const indentStep = 2

// Dump renders a value tree back to dialect text with a 2-space
// indent step. Output is minimally quoted: strings stay bare unless
// reparsing them would change their meaning, so the quoting heuristics
// are symmetric to the scalar resolver. Dump is total for any
// well-formed Value tree and never ends its output with a newline.
func Dump(v Value) string {
	switch v.Kind() {
	case KindMapping, KindSequence:
		if v.Len() == 0 {
			return "[]"
		}
		var lines []string
		if v.Kind() == KindMapping {
			dumpMapping(v, 0, &lines)
		} else {
			dumpSequence(v, 0, &lines)
		}
		return strings.Join(lines, "\n")
	default:
		return scalarText(v)
	}
}

func dumpMapping(m Value, indent int, lines *[]string) {
	pad := strings.Repeat(" ", indent)
	for _, e := range m.entries {
		key := keyText(e.key)
		switch e.val.Kind() {
		case KindSequence:
			if e.val.Len() == 0 {
				*lines = append(*lines, pad+key+": []")
				continue
			}
			*lines = append(*lines, pad+key+":")
			dumpSequence(e.val, indent+indentStep, lines)
		case KindMapping:
			// Empty mappings render as [], conflated with empty
			// sequences, matching the historical output shape.
			if e.val.Len() == 0 {
				*lines = append(*lines, pad+key+": []")
				continue
			}
			*lines = append(*lines, pad+key+":")
			dumpMapping(e.val, indent+indentStep, lines)
		case KindNull:
			*lines = append(*lines, pad+key+":")
		case KindString:
			if strings.Contains(e.val.strVal, "\n") {
				dumpBlockScalar(key, e.val.strVal, indent, lines)
				continue
			}
			*lines = append(*lines, pad+key+": "+scalarText(e.val))
		default:
			*lines = append(*lines, pad+key+": "+scalarText(e.val))
		}
	}
}

// keyText renders a mapping key, quoting it when the bare text would
// not scan back as the same key: empty keys, keys a line classifier
// would read as a comment or dash item, keys the entry splitter would
// truncate or reject, and keys that only match after unquoting.
func keyText(k string) string {
	if k != "" && k[0] != '#' && !isDashItem(k) {
		if got, _, ok := splitEntry(k + ": v"); ok && got == k {
			return k
		}
	}
	return `"` + strings.ReplaceAll(k, `"`, `\"`) + `"`
}

func dumpSequence(s Value, indent int, lines *[]string) {
	pad := strings.Repeat(" ", indent)
	for _, el := range s.seq {
		switch el.Kind() {
		case KindSequence, KindMapping:
			if el.Len() == 0 {
				*lines = append(*lines, pad+"- []")
				continue
			}
			*lines = append(*lines, pad+"-")
			if el.Kind() == KindSequence {
				dumpSequence(el, indent+indentStep, lines)
			} else {
				dumpMapping(el, indent+indentStep, lines)
			}
		case KindNull:
			*lines = append(*lines, pad+"-")
		default:
			*lines = append(*lines, pad+"- "+scalarText(el))
		}
	}
}

// dumpBlockScalar renders a multi-line string as a pipe block scalar,
// the only form that survives a reparse with embedded newlines intact.
func dumpBlockScalar(key, text string, indent int, lines *[]string) {
	pad := strings.Repeat(" ", indent)
	*lines = append(*lines, pad+key+": |")
	inner := pad + strings.Repeat(" ", indentStep)
	for _, part := range strings.Split(text, "\n") {
		if part == "" {
			*lines = append(*lines, "")
			continue
		}
		*lines = append(*lines, inner+part)
	}
}

func scalarText(v Value) string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		return strconv.FormatBool(v.boolVal)
	case KindNumber:
		return strconv.FormatFloat(v.numVal, 'f', -1, 64)
	case KindString:
		// Newlines cannot be represented in an inline scalar; folding
		// them to spaces keeps the output parseable.
		s := strings.ReplaceAll(v.strVal, "\n", " ")
		return quoteString(s)
	default:
		return ""
	}
}

func quoteString(s string) string {
	if needsQuote(s) {
		return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	}
	return s
}

// needsQuote decides whether a string survives a reparse unquoted.
func needsQuote(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return true
	}
	if s != t {
		return true
	}
	// tokens the resolver would read back as another type
	if v := Resolve(s); v.Kind() != KindString || v.strVal != s {
		return true
	}
	// date/timestamp-shaped tokens stay bare even with a colon
	if dateLike(s) {
		return false
	}
	// '|' would reparse as a block scalar introducer
	switch s[0] {
	case '&', '!', '-', '{', '[', '\'', '"', '|':
		return true
	}
	for i := 0; i+1 < len(s); i++ {
		if s[i] == ':' && (s[i+1] == ' ' || s[i+1] == '\t') {
			return true
		}
	}
	// text a reparse would truncate at a trailing comment
	return stripTrailingComment(s) != s
}

// dateLike reports whether s is a date/timestamp-like token: two or
// more digit runs separated by '.', '_', ':' or spaces.
func dateLike(s string) bool {
	runs := 0
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return false
		}
		runs++
		if i == len(s) {
			break
		}
		sep := i
		for i < len(s) && (s[i] == '.' || s[i] == '_' || s[i] == ':' || s[i] == ' ') {
			i++
		}
		if i == sep || i == len(s) {
			return false
		}
	}
	return runs >= 2
}

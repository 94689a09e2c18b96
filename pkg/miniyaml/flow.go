package miniyaml

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// parseFlow decodes an inline flow collection: a bracketed sequence
// [a, b] or mapping {a: 1}, possibly nested. The whole literal must
// sit on the token; flow collections never span lines.
func parseFlow(s string) (Value, error) {
	s = strings.TrimSpace(s)
	open := s[0]
	closer := byte(']')
	if open == '{' {
		closer = '}'
	}

	end, err := matchBracket(s, closer)
	if err != nil {
		return Null(), err
	}
	if end != len(s)-1 {
		return Null(), errors.Wrapf(ErrScalarFormat, "trailing characters after %q", string(closer))
	}

	elems := splitTop(s[1 : len(s)-1])
	if open == '[' {
		seq := Seq()
		for _, el := range elems {
			v, err := resolveScalar(el)
			if err != nil {
				return Null(), err
			}
			seq.Append(v)
		}
		return seq, nil
	}

	m := Map()
	for _, el := range elems {
		key, rest, ok := splitFlowEntry(el)
		if !ok {
			return Null(), errors.Wrapf(ErrKeyFormat, "flow mapping element %q", strings.TrimSpace(el))
		}
		v, err := resolveScalar(rest)
		if err != nil {
			return Null(), err
		}
		m.Set(ParseString(key), v)
	}
	return m, nil
}

// matchBracket returns the index of the close bracket matching s[0],
// skipping nested brackets and quoted spans.
func matchBracket(s string, closer byte) (int, error) {
	var q quoteState
	depth := 0
	for i := 0; i < len(s); {
		if !q.inQuote() {
			switch s[i] {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
				if depth == 0 {
					if s[i] != closer {
						return 0, errors.Wrapf(ErrUnterminatedLiteral, "expected %q, found %q", string(closer), string(s[i]))
					}
					return i, nil
				}
			}
		}
		i += q.step(s, i)
	}
	if q.inQuote() {
		return 0, errors.Wrap(ErrUnterminatedLiteral, "unclosed quote in flow collection")
	}
	return 0, errors.Wrapf(ErrUnterminatedLiteral, "missing closing %q", string(closer))
}

// splitTop splits the inner text of a flow collection on top-level
// commas. Commas nested inside brackets or quotes do not split. Empty
// elements (from a trailing comma or an empty collection) are dropped.
func splitTop(inner string) []string {
	var elems []string
	var q quoteState
	depth := 0
	start := 0
	for i := 0; i < len(inner); {
		if !q.inQuote() {
			switch inner[i] {
			case '[', '{':
				depth++
			case ']', '}':
				depth--
			case ',':
				if depth == 0 {
					elems = append(elems, inner[start:i])
					start = i + 1
				}
			}
		}
		i += q.step(inner, i)
	}
	elems = append(elems, inner[start:])

	out := elems[:0]
	for _, el := range elems {
		if strings.TrimSpace(el) != "" {
			out = append(out, el)
		}
	}
	return out
}

package miniyaml

import "strings"

// quoteState tracks whether a scan position is inside a quoted span.
// Comment and separator detection must ignore '#' and ':' inside
// quotes, so the state is threaded through every scan.
type quoteState struct {
	quote byte // 0, '\'' or '"'
}

func (q *quoteState) inQuote() bool { return q.quote != 0 }

// step consumes s[i] and updates the state. It returns the number of
// bytes consumed (2 for an escaped quote inside a double-quoted span,
// 1 otherwise).
func (q *quoteState) step(s string, i int) int {
	c := s[i]
	switch q.quote {
	case 0:
		if c == '\'' || c == '"' {
			q.quote = c
		}
	case '"':
		if c == '\\' && i+1 < len(s) && s[i+1] == '"' {
			return 2
		}
		if c == '"' {
			q.quote = 0
		}
	case '\'':
		if c == '\'' {
			q.quote = 0
		}
	}
	return 1
}

// stripTrailingComment removes an unquoted trailing comment from s.
// A '#' opens a comment only when it is outside any quote and preceded
// by at least one whitespace character that belongs to s itself, so a
// value that starts with '#' (a literal tag like #demo) survives.
func stripTrailingComment(s string) string {
	var q quoteState
	for i := 0; i < len(s); {
		if s[i] == '#' && !q.inQuote() && i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
			return strings.TrimRight(s[:i], " \t")
		}
		i += q.step(s, i)
	}
	return s
}

// splitEntry splits a mapping-entry line at the first unquoted ':'
// that is followed by whitespace or end of line. The key is returned
// trimmed and unquoted. ok is false when the line is not a mapping
// entry (no such separator, or an empty key).
func splitEntry(s string) (key, rest string, ok bool) {
	var q quoteState
	for i := 0; i < len(s); {
		if s[i] == '#' && !q.inQuote() && i > 0 && (s[i-1] == ' ' || s[i-1] == '\t') {
			// separator inside a trailing comment does not count
			return "", "", false
		}
		if s[i] == ':' && !q.inQuote() {
			if i+1 == len(s) || s[i+1] == ' ' || s[i+1] == '\t' {
				key = ParseString(s[:i])
				if key == "" {
					return "", "", false
				}
				return key, s[i+1:], true
			}
		}
		i += q.step(s, i)
	}
	return "", "", false
}

// splitFlowEntry splits a flow-mapping element at its first unquoted
// ':'. Unlike block entries, no whitespace is required after the colon.
func splitFlowEntry(s string) (key, rest string, ok bool) {
	var q quoteState
	for i := 0; i < len(s); {
		if s[i] == ':' && !q.inQuote() {
			return strings.TrimSpace(s[:i]), s[i+1:], true
		}
		i += q.step(s, i)
	}
	return "", "", false
}

// quoteUnclosed reports whether a scan of t ends inside an open quote,
// i.e. the token opens a quoted span that never closes on this line.
func quoteUnclosed(t string) bool {
	var q quoteState
	for i := 0; i < len(t); {
		i += q.step(t, i)
	}
	return q.inQuote()
}

package miniyaml

import "strings"

// line is one physical input line, indentation-normalized: indent
// counts leading whitespace characters (tabs and spaces each count as
// one unit, no expansion) and content is the remainder with trailing
// whitespace stripped. Comments are stripped later, by the block
// parser, because pipe block scalars must see them verbatim.
type line struct {
	num     int // 1-based physical line number
	indent  int
	content string
}

func (ln line) blank() bool {
	return ln.content == ""
}

// commentOnly reports whether the line is a pure comment: its content
// starts with '#'. A '#' in value position is handled separately and
// is not necessarily a comment.
func (ln line) commentOnly() bool {
	return strings.HasPrefix(ln.content, "#")
}

// readLines splits raw text into line records.
func readLines(text string) []line {
	if text == "" {
		return nil
	}
	raw := strings.Split(text, "\n")
	lines := make([]line, 0, len(raw))
	for i, s := range raw {
		s = strings.TrimSuffix(s, "\r")
		indent := 0
		for indent < len(s) && (s[indent] == ' ' || s[indent] == '\t') {
			indent++
		}
		lines = append(lines, line{
			num:     i + 1,
			indent:  indent,
			content: strings.TrimRight(s[indent:], " \t"),
		})
	}
	return lines
}

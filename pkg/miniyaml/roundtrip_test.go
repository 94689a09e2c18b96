package miniyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Dump output must reparse to an equal tree. Empty mappings are the
// one documented exception: they serialize as [] and come back as
// empty sequences.
func TestRoundTripValues(t *testing.T) {
	values := []Value{
		Null(),
		Bool(true),
		Bool(false),
		Number(0),
		Number(42),
		Number(-2.5),
		String("plain"),
		String("hi there"),
		Seq(),
		Seq(Number(1), String("two"), Bool(true), Null()),
		Seq(String("#demo"), String("x # y"), String("")),
		mapOf(
			"title", String("My Note"),
			"version", String("2025.5.6"),
			"count", Number(3),
			"published", Bool(false),
			"draft", Null(),
			"literal-true", String("true"),
			"literal-num", String("42"),
			"spaced", String(" padded "),
			"colon", String("2023: a letter"),
			"when", String("12:30:45"),
		),
		mapOf(
			"tags", Seq(String("go"), String("parsing")),
			"meta", mapOf(
				"rank", Number(1),
				"inner", Seq(mapOf("deep", Bool(true))),
			),
			"empty-list", Seq(),
		),
		mapOf("body", String("line one\n  indented\n\nline four")),
		Seq(Seq(Number(1), Number(2)), Seq()),
		mapOf("pipe", String("|pipe"), "bar", String("| spaced")),
		mapOf("a: b", Number(1), "#tag", String("x")),
	}
	for _, v := range values {
		text := Dump(v)
		got, err := Parse(text)
		require.NoError(t, err, "dump output: %q", text)
		assert.True(t, got.Equal(v), "round trip changed value\ndump: %s\nback: %s", text, Dump(got))
	}
}

func TestRoundTripTextStable(t *testing.T) {
	// canonical documents reproduce themselves byte for byte
	docs := []string{
		"title: My Note",
		"done: false",
		"empty:",
		strings.Join([]string{
			"title: Weekly Review",
			"tags:",
			"  - work",
			"  - planning",
			"created: 2025-01-02",
			"rating: 4.5",
		}, "\n"),
		strings.Join([]string{
			"aliases:",
			"  - First",
			"  - Second",
			"nested:",
			"  a: 1",
			"  b:",
			"    - x",
		}, "\n"),
	}
	for _, doc := range docs {
		v, err := Parse(doc)
		require.NoError(t, err, "doc: %q", doc)
		assert.Equal(t, doc, Dump(v), "doc: %q", doc)
	}
}

func TestRoundTripNormalizes(t *testing.T) {
	// non-canonical input settles after one pass
	in := "a:   1   # count\nlist: [x, \"y z\"]\n\n# note\nb:\n\t- true"
	v, err := Parse(in)
	require.NoError(t, err)
	out := Dump(v)
	want := strings.Join([]string{
		"a: 1",
		"list:",
		"  - x",
		"  - y z",
		"b:",
		"  - true",
	}, "\n")
	assert.Equal(t, want, out)

	// and the normalized form is a fixed point
	v2, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, out, Dump(v2))
}

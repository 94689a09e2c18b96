package miniyaml

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDumpScalars(t *testing.T) {
	tests := []struct {
		val  Value
		want string
	}{
		{Number(1), "1"},
		{Number(2.5), "2.5"},
		{Number(-3), "-3"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Null(), ""},
		{String("plain text"), "plain text"},
		{String(""), `""`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dump(tt.val))
	}
}

func TestDumpMapping(t *testing.T) {
	m := mapOf(
		"title", String("My Note"),
		"count", Number(3),
		"done", Bool(false),
		"empty", Null(),
	)
	want := strings.Join([]string{
		"title: My Note",
		"count: 3",
		"done: false",
		"empty:",
	}, "\n")
	assert.Equal(t, want, Dump(m))
}

func TestDumpNested(t *testing.T) {
	m := mapOf(
		"tags", Seq(String("a"), String("b")),
		"meta", mapOf("rank", Number(1)),
		"none", Seq(),
	)
	want := strings.Join([]string{
		"tags:",
		"  - a",
		"  - b",
		"meta:",
		"  rank: 1",
		"none: []",
	}, "\n")
	assert.Equal(t, want, Dump(m))
}

func TestDumpSequenceOfMappings(t *testing.T) {
	m := mapOf("items", Seq(
		mapOf("name", String("first")),
		mapOf("name", String("second")),
	))
	want := strings.Join([]string{
		"items:",
		"  -",
		"    name: first",
		"  -",
		"    name: second",
	}, "\n")
	assert.Equal(t, want, Dump(m))
}

func TestDumpEmptyContainers(t *testing.T) {
	assert.Equal(t, "[]", Dump(Seq()))
	assert.Equal(t, "[]", Dump(Map()))
	// empty nested mappings share the [] form with sequences
	assert.Equal(t, "inner: []", Dump(mapOf("inner", Map())))
}

func TestDumpQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "a: plain"},
		{"", `a: ""`},
		{"2025.5.6", "a: 2025.5.6"},
		{"2025-01-02", "a: 2025-01-02"},
		{"12:30:45", "a: 12:30:45"},
		{"2023: a letter", `a: "2023: a letter"`},
		{"true", `a: "true"`},
		{"null", `a: "null"`},
		{"42", `a: "42"`},
		{"-lead", `a: "-lead"`},
		{"[not flow]", `a: "[not flow]"`},
		{"&anchor", `a: "&anchor"`},
		{"#demo", "a: #demo"},
		{"x # y", `a: "x # y"`},
		{" padded", `a: " padded"`},
		{`say "hi"`, `a: say "hi"`},
		{`"fully quoted"`, `a: "\"fully quoted\""`},
		{"|pipe", `a: "|pipe"`},
		{"| spaced", `a: "| spaced"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Dump(mapOf("a", String(tt.in))), "input %q", tt.in)
	}
}

func TestDumpQuotesAwkwardKeys(t *testing.T) {
	m := mapOf(
		"plain", Number(1),
		"a: b", Number(2),
		"#tag", String("x"),
		"- item", Bool(true),
		"trail #note", Null(),
	)
	want := strings.Join([]string{
		"plain: 1",
		`"a: b": 2`,
		`"#tag": x`,
		`"- item": true`,
		`"trail #note":`,
	}, "\n")
	assert.Equal(t, want, Dump(m))

	back, err := Parse(Dump(m))
	assert.NoError(t, err)
	assert.True(t, back.Equal(m), "got %s", Dump(back))
}

func TestDumpBlockScalar(t *testing.T) {
	m := mapOf(
		"body", String("first\n  kept indent\n\nlast"),
		"after", Number(1),
	)
	want := strings.Join([]string{
		"body: |",
		"  first",
		"    kept indent",
		"",
		"  last",
		"after: 1",
	}, "\n")
	assert.Equal(t, want, Dump(m))
}

func TestDumpMultilineInSequenceFoldsToSpaces(t *testing.T) {
	// sequence items have no block-scalar form; newlines fold
	got := Dump(mapOf("a", Seq(String("two\nlines"))))
	assert.Equal(t, "a:\n  - two lines", got)
}

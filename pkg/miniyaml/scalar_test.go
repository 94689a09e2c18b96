package miniyaml

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStringQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  padded  ", "padded"},
		{`"double"`, "double"},
		{`'single'`, "single"},
		{`"with \" escape"`, `with " escape`},
		{`'no \" escape'`, `no \" escape`},
		{`"`, `"`},
		{`"mismatched'`, `"mismatched'`},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseString(tt.in), "input %q", tt.in)
	}
}

func TestParseNumber(t *testing.T) {
	ok := []struct {
		in   string
		want float64
	}{
		{"42", 42},
		{"-1", -1},
		{"+2.5", 2.5},
		{"0.001", 0.001},
		{" 7 ", 7},
	}
	for _, tt := range ok {
		n, err := ParseNumber(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, n)
	}

	bad := []string{"", "abc", "2025.5.6", "1e5", "0x10", "NaN", "nan", "inf", "-", "1.2.3", "12px"}
	for _, in := range bad {
		_, err := ParseNumber(in)
		require.Error(t, err, "input %q", in)
		assert.True(t, errors.Is(err, ErrScalarFormat), "input %q: %v", in, err)
	}
}

func TestParseBool(t *testing.T) {
	b, err := ParseBool("true")
	require.NoError(t, err)
	assert.True(t, b)

	b, err = ParseBool("false")
	require.NoError(t, err)
	assert.False(t, b)

	for _, in := range []string{"True", "FALSE", "yes", "no", "on", "off", "1", ""} {
		_, err := ParseBool(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestParseNull(t *testing.T) {
	assert.NoError(t, ParseNull("null"))
	assert.NoError(t, ParseNull(""))
	assert.NoError(t, ParseNull("   "))
	assert.Error(t, ParseNull("Null"))
	assert.Error(t, ParseNull("~"))
	assert.Error(t, ParseNull("nil"))
}

func TestResolveOrder(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
	}{
		{"null", KindNull},
		{"", KindNull},
		{"true", KindBool},
		{"3.5", KindNumber},
		{`"true"`, KindString}, // quoting defeats the bool reading
		{`"3"`, KindString},
		{"2025.5.6", KindString},
		{"anything else", KindString},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.kind, Resolve(tt.in).Kind(), "input %q", tt.in)
	}

	// quoted literals resolve to their unquoted content
	assert.Equal(t, "null", Resolve(`"null"`).String())
}

func TestStripTrailingComment(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"value # comment", "value"},
		{"value\t# comment", "value"},
		{"#leading", "#leading"},
		{"no comment", "no comment"},
		{`"a # b"`, `"a # b"`},
		{"'a # b' # real", "'a # b'"},
		{"glued#hash", "glued#hash"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stripTrailingComment(tt.in), "input %q", tt.in)
	}
}

func TestSplitEntry(t *testing.T) {
	key, rest, ok := splitEntry("foo: bar")
	require.True(t, ok)
	assert.Equal(t, "foo", key)
	assert.Equal(t, " bar", rest)

	key, _, ok = splitEntry(`"quoted: key": v`)
	require.True(t, ok)
	assert.Equal(t, "quoted: key", key)

	key, rest, ok = splitEntry("trailing:")
	require.True(t, ok)
	assert.Equal(t, "trailing", key)
	assert.Equal(t, "", rest)

	for _, in := range []string{"no separator", "glued:#x", ": empty key"} {
		_, _, ok := splitEntry(in)
		assert.False(t, ok, "input %q", in)
	}
}

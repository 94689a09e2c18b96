package miniyaml

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// ParseString trims the token and strips a matching pair of single or
// double quotes. Within double quotes the escape \" becomes a literal
// quote; no other escape sequences are interpreted.
func ParseString(tok string) string {
	t := strings.TrimSpace(tok)
	if len(t) >= 2 {
		switch {
		case t[0] == '"' && t[len(t)-1] == '"':
			return strings.ReplaceAll(t[1:len(t)-1], `\"`, `"`)
		case t[0] == '\'' && t[len(t)-1] == '\'':
			return t[1 : len(t)-1]
		}
	}
	return t
}

// ParseNumber parses a plain signed integer or decimal literal. It
// rejects everything else: dotted date-like tokens such as 2025.5.6,
// exponents, hex forms, NaN, and non-numeric text.
func ParseNumber(tok string) (float64, error) {
	t := strings.TrimSpace(tok)
	if !numberShaped(t) {
		return 0, errors.Wrapf(ErrScalarFormat, "not a number: %q", t)
	}
	n, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrScalarFormat, "not a number: %q", t)
	}
	return n, nil
}

// numberShaped reports whether t is a bare integer or decimal literal:
// an optional sign, digits, and at most one dot. strconv.ParseFloat
// alone is too permissive here (it accepts exponents, hex floats,
// "inf", and "NaN").
func numberShaped(t string) bool {
	if t == "" {
		return false
	}
	i := 0
	if t[0] == '+' || t[0] == '-' {
		i++
	}
	digits, dots := 0, 0
	for ; i < len(t); i++ {
		switch {
		case t[i] >= '0' && t[i] <= '9':
			digits++
		case t[i] == '.':
			dots++
			if dots > 1 {
				return false
			}
		default:
			return false
		}
	}
	return digits > 0
}

// ParseBool parses exactly the literals true and false, case-sensitive.
func ParseBool(tok string) (bool, error) {
	switch strings.TrimSpace(tok) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Wrapf(ErrScalarFormat, "not a boolean: %q", tok)
}

// ParseNull returns nil for the literal null or an empty token.
func ParseNull(tok string) error {
	t := strings.TrimSpace(tok)
	if t == "" || t == "null" {
		return nil
	}
	return errors.Wrapf(ErrScalarFormat, "not null: %q", tok)
}

// Resolve classifies a scalar token, in order: explicit null, boolean,
// number, quoted string, plain string. A token that fails numeric
// parsing is not retried as another type; it falls through to a plain
// trimmed string. Resolve is total.
func Resolve(tok string) Value {
	t := strings.TrimSpace(tok)
	if ParseNull(t) == nil {
		return Null()
	}
	if b, err := ParseBool(t); err == nil {
		return Bool(b)
	}
	if n, err := ParseNumber(t); err == nil {
		return Number(n)
	}
	return String(ParseString(t))
}

// resolveScalar is Resolve extended with inline flow collections: a
// token opening with '[' or '{' is delegated to the flow decoder and
// may fail.
func resolveScalar(tok string) (Value, error) {
	t := strings.TrimSpace(tok)
	if strings.HasPrefix(t, "[") || strings.HasPrefix(t, "{") {
		return parseFlow(t)
	}
	return Resolve(t), nil
}

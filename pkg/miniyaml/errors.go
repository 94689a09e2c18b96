package miniyaml

import "github.com/cockroachdb/errors"

// Sentinel errors for parse failures. All errors returned by Parse wrap
// exactly one of these, so callers can classify failures with errors.Is.
var (
	// ErrIndentation indicates a line whose indentation is inconsistent
	// with its position in the document structure.
	ErrIndentation = errors.New("invalid indentation")

	// ErrScalarFormat indicates a token that failed a required scalar
	// parse (malformed number, boolean, or null literal).
	ErrScalarFormat = errors.New("malformed scalar")

	// ErrUnterminatedLiteral indicates an unclosed bracket or quote.
	ErrUnterminatedLiteral = errors.New("unterminated literal")

	// ErrKeyFormat indicates a mapping entry without the required ':'
	// separator.
	ErrKeyFormat = errors.New("mapping entry missing ':' separator")
)

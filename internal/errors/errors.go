// Package errors provides error handling conventions for the mdnote
// CLI: sentinel errors for common failure conditions, an ExitError
// type carrying the process exit code, and thin re-exports of the
// cockroachdb/errors constructors so the rest of the codebase imports
// a single errors package.
package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNoteNotFound indicates the requested note does not exist.
	ErrNoteNotFound = crdberrors.New("note not found")

	// ErrVaultNotFound indicates no vault directory could be resolved.
	ErrVaultNotFound = crdberrors.New("vault not found")

	// ErrFieldNotFound indicates a frontmatter field is absent.
	ErrFieldNotFound = crdberrors.New("field not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdberrors.New("invalid configuration")
)

// Constructors and inspectors re-exported from cockroachdb/errors.
var (
	New       = crdberrors.New
	Newf      = crdberrors.Newf
	Wrap      = crdberrors.Wrap
	Wrapf     = crdberrors.Wrapf
	WithStack = crdberrors.WithStack
	Is        = crdberrors.Is
	As        = crdberrors.As
	Unwrap    = crdberrors.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion.
// It implements the error interface and supports unwrapping via
// errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error
// and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitUser, Suggestion: suggestion}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{Err: err, Code: ExitSystem, Suggestion: suggestion}
}

// Error returns the underlying error's message, or a generic message
// with the exit code when Err is nil.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and
// errors.As to examine the chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitErrorMessage(t *testing.T) {
	e := NewExitError(New("boom"), ExitSystem)
	assert.Equal(t, "boom", e.Error())
	assert.Equal(t, ExitSystem, e.Code)

	e = NewExitError(nil, ExitUser)
	assert.Equal(t, "exit code 1", e.Error())
}

func TestExitErrorUnwrap(t *testing.T) {
	e := NewUserError(Wrap(ErrNoteNotFound, "looking up daily note"), "check the note path")
	assert.True(t, Is(e, ErrNoteNotFound))

	var exitErr *ExitError
	require.True(t, As(e, &exitErr))
	assert.Equal(t, ExitUser, exitErr.Code)
	assert.Equal(t, "check the note path", exitErr.Suggestion)
}

func TestSentinelsDistinct(t *testing.T) {
	assert.False(t, Is(ErrNoteNotFound, ErrVaultNotFound))
	assert.False(t, Is(ErrFieldNotFound, ErrInvalidConfig))
}

func TestWrapPreservesSentinel(t *testing.T) {
	err := Wrapf(ErrVaultNotFound, "resolving %q", "~/notes")
	assert.True(t, Is(err, ErrVaultNotFound))
	assert.Contains(t, err.Error(), "resolving")
}

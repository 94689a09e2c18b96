package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	require.NoError(t, EnsureDir(dir, 0))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(DefaultDirPerm), info.Mode().Perm())

	// idempotent
	require.NoError(t, EnsureDir(dir, 0))
}

func TestExpandTilde(t *testing.T) {
	home := Home()
	require.NotEmpty(t, home)

	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "notes"), ExpandTilde("~/notes"))
	assert.Equal(t, "/abs/path", ExpandTilde("/abs/path"))
	assert.Equal(t, "relative", ExpandTilde("relative"))
	assert.Equal(t, "~user/notes", ExpandTilde("~user/notes"))
}

func TestResolveVault(t *testing.T) {
	dir := t.TempDir()

	got, err := ResolveVault(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)
}

func TestResolveVaultMissing(t *testing.T) {
	_, err := ResolveVault(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVaultNotFound))
}

func TestResolveVaultFileNotDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "note.md")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := ResolveVault(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVaultNotFound))
}

func TestFindVaultUpward(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".obsidian"), 0755))
	nested := filepath.Join(root, "daily", "2026")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, root, FindVaultUpward(nested))
	assert.Equal(t, root, FindVaultUpward(root))
}

func TestFindVaultUpwardNoMarker(t *testing.T) {
	assert.Equal(t, "", FindVaultUpward(t.TempDir()))
}

func TestXDGDirsNonEmpty(t *testing.T) {
	assert.NotEmpty(t, ConfigHome())
	assert.NotEmpty(t, DataHome())
	assert.NotEmpty(t, CacheHome())
	assert.Contains(t, ConfigDir(), "mdnote")
	assert.Contains(t, DefaultVault(), "mdnote")
}

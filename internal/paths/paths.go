// Package paths provides path resolution for the mdnote CLI: the
// user's home directory, XDG base directories, and the note vault.
//
// XDG resolution wraps github.com/adrg/xdg, so on Linux and macOS the
// config, data, and cache locations follow the XDG Base Directory
// Specification (~/.config, ~/.local/share, ~/.cache).
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not
	// be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrVaultNotFound indicates the vault directory does not exist.
	ErrVaultNotFound = errors.New("vault directory not found")
)

// DefaultDirPerm is the default permission for newly created
// directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents. If perm
// is 0, DefaultDirPerm is used. Idempotent.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory, or "" when it cannot be
// determined. Use ResolveHome for error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
func DataHome() string {
	return xdg.DataHome
}

// CacheHome returns the XDG cache home directory.
func CacheHome() string {
	return xdg.CacheHome
}

// ConfigDir returns the mdnote config directory: <ConfigHome>/mdnote.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), "mdnote")
}

// DefaultVault returns the vault location used when no vault is
// configured: <DataHome>/mdnote/vault.
func DefaultVault() string {
	return filepath.Join(DataHome(), "mdnote", "vault")
}

// ExpandTilde expands a leading ~ or ~/ to the user's home directory.
// Paths without a leading tilde are returned unchanged.
func ExpandTilde(path string) string {
	if path == "~" {
		return Home()
	}
	if strings.HasPrefix(path, "~/") {
		home := Home()
		if home == "" {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// vaultMarkers are directory names that identify a vault root when
// walking up from the working directory.
var vaultMarkers = []string{".mdnote", ".obsidian"}

// FindVaultUpward walks from dir toward the filesystem root looking
// for a directory carrying a vault marker. Returns "" when no marker
// is found.
func FindVaultUpward(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		for _, marker := range vaultMarkers {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil && info.IsDir() {
				return dir
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// ResolveVault expands and validates a configured vault path. An empty
// path falls back to a marker search upward from the working
// directory, then to DefaultVault. The directory must exist; this
// function never creates it.
func ResolveVault(configured string) (string, error) {
	path := ExpandTilde(configured)
	if path == "" {
		if cwd, err := os.Getwd(); err == nil {
			path = FindVaultUpward(cwd)
		}
	}
	if path == "" {
		path = DefaultVault()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(ErrVaultNotFound, "resolving %q: %v", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", errors.Wrapf(ErrVaultNotFound, "%s", abs)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrVaultNotFound, "%s is not a directory", abs)
	}
	return abs, nil
}

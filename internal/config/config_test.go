package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init()
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Vault)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Contains(t, cfg.Exclude, ".git")
}

func TestLoadFile(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "vault: /tmp/notes\neditor: nvim\nexclude:\n  - archive\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/notes", cfg.Vault)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, []string{"archive"}, cfg.Exclude)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	resetViper(t)

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestEnvOverride(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("MDNOTE_VAULT", "/env/vault")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/env/vault", cfg.Vault)
}

func TestValidate(t *testing.T) {
	assert.Empty(t, Validate(Default()))

	bad := &Config{LogLevel: "verbose"}
	assert.NotEmpty(t, Validate(bad))

	bad = &Config{LogLevel: "info", Exclude: []string{"a/b"}}
	assert.NotEmpty(t, Validate(bad))

	assert.NotEmpty(t, Validate(nil))
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, []string{".env", ".env.*", ".envrc"}, cfg.CopyFiles)
	assert.Equal(t, filepath.Join(".glade", "worktrees"), cfg.WorktreeDir)
	assert.Empty(t, cfg.Editor)
	assert.True(t, cfg.InstallEnabled())
}

func TestLoadReadsProjectFile(t *testing.T) {
	root := t.TempDir()
	raw := "copy_files:\n  - .env\n  - secrets/*.key\neditor: nvim\nbase_branch: develop\ninstall: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte(raw), 0o644))

	cfg, err := Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{".env", "secrets/*.key"}, cfg.CopyFiles)
	assert.Equal(t, "nvim", cfg.Editor)
	assert.Equal(t, "develop", cfg.BaseBranch)
	assert.False(t, cfg.InstallEnabled())
}

func TestLoadMalformedFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("copy_files: {nope"), 0o644))

	_, err := Load(root)
	assert.Error(t, err)
}

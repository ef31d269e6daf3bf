package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project config file looked up at the repo root.
const FileName = ".glade.yaml"

// Config holds per-project settings. Every field has a usable zero-value
// default so a missing config file is not an error.
type Config struct {
	// CopyFiles are glob patterns, relative to the main worktree, copied
	// into a freshly created workspace (env files are untracked, so a new
	// worktree starts without them).
	CopyFiles []string `yaml:"copy_files"`

	// Editor overrides $VISUAL/$EDITOR when launching an editor in a new
	// workspace.
	Editor string `yaml:"editor"`

	// BaseBranch is the default branch new workspaces fork from. Empty
	// means "ask git for the remote default branch".
	BaseBranch string `yaml:"base_branch"`

	// Install disables dependency installation in new workspaces when
	// explicitly set to false.
	Install *bool `yaml:"install"`

	// WorktreeDir is where worktrees are placed, relative to the repo
	// root. Defaults to ".glade/worktrees".
	WorktreeDir string `yaml:"worktree_dir"`
}

// Load reads the project config from repoRoot, applying defaults. A missing
// file yields the default config; a malformed file is an error.
func Load(repoRoot string) (Config, error) {
	cfg := Config{}

	raw, err := os.ReadFile(filepath.Join(repoRoot, FileName))
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", FileName, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read %s: %w", FileName, err)
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.CopyFiles) == 0 {
		c.CopyFiles = []string{".env", ".env.*", ".envrc"}
	}
	if c.WorktreeDir == "" {
		c.WorktreeDir = filepath.Join(".glade", "worktrees")
	}
}

// InstallEnabled reports whether dependency installation should run for new
// workspaces.
func (c Config) InstallEnabled() bool {
	return c.Install == nil || *c.Install
}

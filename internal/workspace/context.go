package workspace

import (
	"fmt"
	"path/filepath"
	"strings"

	"glade/internal/config"
	"glade/internal/git"
	"glade/internal/model"
)

// Context carries everything derived once at startup: repository root,
// project identity, worktree placement, and the loaded config. It is
// threaded explicitly into the safety gate and commands so they can be
// tested against fabricated contexts.
type Context struct {
	RepoRoot     string
	Project      string
	WorktreesDir string
	Config       config.Config
	Git          git.Runner
}

// Load builds the Context for the repository containing the current
// working directory.
func Load(runner git.Runner) (*Context, error) {
	root, err := runner.RepoRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	return &Context{
		RepoRoot:     root,
		Project:      filepath.Base(root),
		WorktreesDir: filepath.Join(root, cfg.WorktreeDir),
		Config:       cfg,
		Git:          runner,
	}, nil
}

// PathFor returns the worktree directory for a branch.
func (c *Context) PathFor(branch string) string {
	return filepath.Join(c.WorktreesDir, EncodeSlug(branch))
}

// SessionName returns the tmux session name for a branch, namespaced by
// project. Dots and colons are meaningful to tmux targets and get
// replaced.
func (c *Context) SessionName(branch string) string {
	name := c.Project + "/" + EncodeSlug(branch)
	name = strings.ReplaceAll(name, ".", "_")
	return strings.ReplaceAll(name, ":", "_")
}

// BaseBranch returns the branch new workspaces fork from.
func (c *Context) BaseBranch() string {
	if c.Config.BaseBranch != "" {
		return c.Config.BaseBranch
	}
	return c.Git.DefaultBranch(c.RepoRoot)
}

// Workspaces returns every workspace of the project except the main
// checkout, slugs filled in.
func (c *Context) Workspaces() ([]model.Workspace, error) {
	worktrees, err := c.Git.ListWorktrees(c.RepoRoot)
	if err != nil {
		return nil, fmt.Errorf("list worktrees: %w", err)
	}

	var workspaces []model.Workspace
	for _, wt := range worktrees {
		if wt.IsMain {
			continue
		}
		wt.Slug = EncodeSlug(wt.Branch)
		workspaces = append(workspaces, wt)
	}
	return workspaces, nil
}

// Find returns the workspace for branch, or nil if none exists.
func (c *Context) Find(branch string) (*model.Workspace, error) {
	workspaces, err := c.Workspaces()
	if err != nil {
		return nil, err
	}
	for i := range workspaces {
		if workspaces[i].Branch == branch {
			return &workspaces[i], nil
		}
	}
	return nil, nil
}

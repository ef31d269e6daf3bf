package workspace

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glade/internal/config"
	"glade/internal/git"
)

func newContext(runner *git.Memory) *Context {
	cfg := config.Config{WorktreeDir: filepath.Join(".glade", "worktrees")}
	return &Context{
		RepoRoot:     runner.Root,
		Project:      filepath.Base(runner.Root),
		WorktreesDir: filepath.Join(runner.Root, cfg.WorktreeDir),
		Config:       cfg,
		Git:          runner,
	}
}

func TestPathFor(t *testing.T) {
	runner := git.NewMemory("/home/u/proj")
	ctx := newContext(runner)

	assert.Equal(t,
		filepath.Join("/home/u/proj", ".glade", "worktrees", "feat-login_-retry"),
		ctx.PathFor("feat/login-retry"))
}

func TestSessionName(t *testing.T) {
	runner := git.NewMemory("/home/u/my.app")
	ctx := newContext(runner)

	name := ctx.SessionName("feat/login")
	assert.Equal(t, "my_app/feat-login", name)
	assert.NotContains(t, name, ".")
	assert.NotContains(t, name, ":")
}

func TestWorkspacesExcludesMain(t *testing.T) {
	runner := git.NewMemory("/repo")
	runner.AddWorkspace("/repo", "main", git.BranchState{})
	runner.AddWorkspace("/repo/.glade/worktrees/feat-a", "feat/a", git.BranchState{})
	runner.AddWorkspace("/repo/.glade/worktrees/b_-fix", "b-fix", git.BranchState{})
	ctx := newContext(runner)

	workspaces, err := ctx.Workspaces()
	require.NoError(t, err)
	require.Len(t, workspaces, 2)
	assert.Equal(t, "feat/a", workspaces[0].Branch)
	assert.Equal(t, "feat-a", workspaces[0].Slug)
	assert.Equal(t, "b_-fix", workspaces[1].Slug)
}

func TestFind(t *testing.T) {
	runner := git.NewMemory("/repo")
	runner.AddWorkspace("/repo", "main", git.BranchState{})
	runner.AddWorkspace("/repo/.glade/worktrees/feat-a", "feat/a", git.BranchState{})
	ctx := newContext(runner)

	ws, err := ctx.Find("feat/a")
	require.NoError(t, err)
	require.NotNil(t, ws)
	assert.Equal(t, "/repo/.glade/worktrees/feat-a", ws.Path)

	missing, err := ctx.Find("feat/none")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestBaseBranch(t *testing.T) {
	runner := git.NewMemory("/repo")
	runner.Default = "trunk"
	ctx := newContext(runner)

	assert.Equal(t, "trunk", ctx.BaseBranch())

	ctx.Config.BaseBranch = "develop"
	assert.Equal(t, "develop", ctx.BaseBranch())
}

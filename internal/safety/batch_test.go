package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glade/internal/git"
	"glade/internal/model"
)

func sweepFixture(t *testing.T) (*git.Memory, []model.Workspace) {
	t.Helper()
	runner := git.NewMemory("/repo")

	clean1 := addWorkspace(t, runner, "feat/a", git.BranchState{Upstream: true, RemoteRef: true})
	blocked := addWorkspace(t, runner, "feat/b", git.BranchState{
		Total: 2,
		Commits: []model.Commit{
			{Hash: "b2", Subject: "two"},
			{Hash: "b1", Subject: "one"},
		},
	})
	clean2 := addWorkspace(t, runner, "feat/c", git.BranchState{Upstream: true, RemoteRef: true})

	workspaces := []model.Workspace{
		{Path: clean1, Branch: "feat/a"},
		{Path: blocked, Branch: "feat/b"},
		{Path: clean2, Branch: "feat/c"},
	}
	return runner, workspaces
}

func TestSweepAllOrNothing(t *testing.T) {
	// Three workspaces, exactly one blocked: the batch aborts and that
	// workspace's reasons are reported.
	runner, workspaces := sweepFixture(t)

	result := Sweep(runner, workspaces, false)
	assert.True(t, result.Aborted)
	assert.Equal(t, 2, result.BlockedUnpushed)

	blocked := result.BlockedItems()
	require.Len(t, blocked, 1)
	assert.Equal(t, "feat/b", blocked[0].Workspace.Branch)
	assert.Contains(t, blocked[0].Decision.Reasons, "2 unpushed commit(s)")
}

func TestSweepForceOverridesEverything(t *testing.T) {
	runner, workspaces := sweepFixture(t)

	result := Sweep(runner, workspaces, true)
	assert.False(t, result.Aborted)
	assert.Empty(t, result.BlockedItems())

	require.Len(t, result.Items, 3)
	for _, item := range result.Items {
		assert.NotEqual(t, Blocked, item.Decision.Verdict)
	}
	// The risky workspace still carries its overridden reasons.
	assert.Equal(t, ForcedProceed, result.Items[1].Decision.Verdict)
	assert.NotEmpty(t, result.Items[1].Decision.Reasons)
}

func TestSweepAllClean(t *testing.T) {
	runner := git.NewMemory("/repo")
	a := addWorkspace(t, runner, "feat/a", git.BranchState{Upstream: true, RemoteRef: true})
	b := addWorkspace(t, runner, "feat/b", git.BranchState{Upstream: true, RemoteRef: true})

	result := Sweep(runner, []model.Workspace{
		{Path: a, Branch: "feat/a"},
		{Path: b, Branch: "feat/b"},
	}, false)

	assert.False(t, result.Aborted)
	assert.Zero(t, result.BlockedUnpushed)
	for _, item := range result.Items {
		assert.Equal(t, Proceed, item.Decision.Verdict)
	}
}

func TestSweepEmpty(t *testing.T) {
	result := Sweep(git.NewMemory("/repo"), nil, false)
	assert.False(t, result.Aborted)
	assert.Empty(t, result.Items)
}

package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glade/internal/git"
	"glade/internal/model"
)

func TestCleanupAllAbortsWhenAnyBlocked(t *testing.T) {
	ctx, runner := testContext(t)
	addBranchWorkspace(t, ctx, runner, "feat/a", git.BranchState{Upstream: true, RemoteRef: true})
	addBranchWorkspace(t, ctx, runner, "feat/b", git.BranchState{
		Total: 2,
		Commits: []model.Commit{
			{Hash: "b2", Subject: "two"},
			{Hash: "b1", Subject: "one"},
		},
	})
	addBranchWorkspace(t, ctx, runner, "feat/c", git.BranchState{Upstream: true, RemoteRef: true})

	var out bytes.Buffer
	err := runCleanupAll(ctx, &out, false)

	require.Error(t, err)
	assert.Empty(t, runner.RemovedPaths, "all-or-nothing: nothing removed when one is blocked")
	assert.Contains(t, out.String(), "refusing to remove feat/b")
	assert.Contains(t, out.String(), "2 unpushed commit(s)")
	assert.Contains(t, out.String(), "1 workspace(s) blocked")
}

func TestCleanupAllCleanRemovesEverything(t *testing.T) {
	ctx, runner := testContext(t)
	addBranchWorkspace(t, ctx, runner, "feat/a", git.BranchState{Upstream: true, RemoteRef: true})
	addBranchWorkspace(t, ctx, runner, "feat/b", git.BranchState{Upstream: true, RemoteRef: true})

	var out bytes.Buffer
	err := runCleanupAll(ctx, &out, false)

	require.NoError(t, err)
	assert.Len(t, runner.RemovedPaths, 2)
	assert.Contains(t, out.String(), "removed 2 of 2 workspace(s)")
}

func TestCleanupAllForceRemovesDespiteIssues(t *testing.T) {
	ctx, runner := testContext(t)
	addBranchWorkspace(t, ctx, runner, "feat/a", git.BranchState{Dirty: true})
	addBranchWorkspace(t, ctx, runner, "feat/b", git.BranchState{Total: 5})

	var out bytes.Buffer
	err := runCleanupAll(ctx, &out, true)

	require.NoError(t, err)
	assert.Len(t, runner.RemovedPaths, 2)
}

func TestCleanupAllPartialFailureContinues(t *testing.T) {
	ctx, runner := testContext(t)
	addBranchWorkspace(t, ctx, runner, "feat/a", git.BranchState{
		Upstream: true, RemoteRef: true,
		RemoveErr: errors.New("device busy"),
	})
	addBranchWorkspace(t, ctx, runner, "feat/b", git.BranchState{Upstream: true, RemoteRef: true})

	var out bytes.Buffer
	err := runCleanupAll(ctx, &out, false)

	require.NoError(t, err, "a per-item failure does not fail the batch")
	assert.Len(t, runner.RemovedPaths, 1)
	assert.Contains(t, out.String(), "failed to remove feat/a")
	assert.Contains(t, out.String(), "removed 1 of 2 workspace(s)")
}

func TestCleanupAllEmpty(t *testing.T) {
	ctx, _ := testContext(t)

	var out bytes.Buffer
	err := runCleanupAll(ctx, &out, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "no workspaces")
}

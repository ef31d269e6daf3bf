package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glade/internal/git"
)

func TestListShowsWorkspaceState(t *testing.T) {
	ctx, runner := testContext(t)
	stubSessions(t)
	addBranchWorkspace(t, ctx, runner, "feat/clean", git.BranchState{Upstream: true, RemoteRef: true})
	addBranchWorkspace(t, ctx, runner, "feat/wip", git.BranchState{Dirty: true, Upstream: true, Ahead: 2})

	var out bytes.Buffer
	err := runList(ctx, &out, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "feat/clean")
	assert.Contains(t, out.String(), "feat-clean")
	assert.Contains(t, out.String(), "clean")
	assert.Contains(t, out.String(), "dirty, 2 ahead")
}

func TestListEmpty(t *testing.T) {
	ctx, _ := testContext(t)

	var out bytes.Buffer
	err := runList(ctx, &out, false)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "no workspaces")
}

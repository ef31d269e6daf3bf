package git

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glade/internal/model"
)

// captureGit replaces execCommand for the duration of a test, recording
// each invocation's argv and making every command succeed.
func captureGit(t *testing.T) *[][]string {
	t.Helper()
	var calls [][]string

	old := execCommand
	t.Cleanup(func() { execCommand = old })
	execCommand = func(name string, args ...string) *exec.Cmd {
		calls = append(calls, append([]string{name}, args...))
		return exec.Command("true")
	}
	return &calls
}

func TestRemoteRefExistsStaysLocal(t *testing.T) {
	calls := captureGit(t)

	ok := NewShell().RemoteRefExists("/repo", "feat/login")
	assert.True(t, ok)

	require.Len(t, *calls, 1)
	argv := (*calls)[0]
	assert.Contains(t, argv, "show-ref")
	assert.Contains(t, argv, "refs/remotes/origin/feat/login")
	assert.NotContains(t, argv, "ls-remote", "the safety report must not reach the network")
}

func TestParseWorktrees(t *testing.T) {
	raw := "worktree /home/u/proj\n" +
		"HEAD aaaa\n" +
		"branch refs/heads/main\n" +
		"\n" +
		"worktree /home/u/proj/.glade/worktrees/feat-login\n" +
		"HEAD bbbb\n" +
		"branch refs/heads/feat/login\n" +
		"\n" +
		"worktree /home/u/detached-wt\n" +
		"HEAD cccc\n" +
		"detached\n"

	workspaces := parseWorktrees(raw)
	require.Len(t, workspaces, 3)

	assert.Equal(t, "/home/u/proj", workspaces[0].Path)
	assert.Equal(t, "main", workspaces[0].Branch)
	assert.True(t, workspaces[0].IsMain)

	assert.Equal(t, "feat/login", workspaces[1].Branch)
	assert.False(t, workspaces[1].IsMain)

	assert.Equal(t, "detached", workspaces[2].Branch)
}

func TestParseWorktreesEmpty(t *testing.T) {
	assert.Empty(t, parseWorktrees(""))
}

func TestParseLog(t *testing.T) {
	raw := "ab12cd3\x1ffix login redirect\n" +
		"9f8e7d6\x1fadd retry queue\n"

	commits := parseLog(raw)
	require.Len(t, commits, 2)
	assert.Equal(t, model.Commit{Hash: "ab12cd3", Subject: "fix login redirect"}, commits[0])
	assert.Equal(t, model.Commit{Hash: "9f8e7d6", Subject: "add retry queue"}, commits[1])
}

func TestParseLogEmpty(t *testing.T) {
	assert.Empty(t, parseLog(""))
}

func TestParseLogSubjectWithSeparatorLookalikes(t *testing.T) {
	commits := parseLog("ab12cd3\x1ffeat: a/b -c thing")
	require.Len(t, commits, 1)
	assert.Equal(t, "feat: a/b -c thing", commits[0].Subject)
}

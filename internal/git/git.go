// Package git wraps the git binary behind a narrow Runner port so the
// cleanup safety logic can be exercised against an in-memory fixture
// instead of a real repository.
package git

import (
	"glade/internal/model"
)

// Runner is the capability set glade needs from a version-control system.
// dir is a checkout path; any worktree of the repository is acceptable.
type Runner interface {
	// RepoRoot returns the absolute path of the main worktree for the
	// repository containing the current working directory.
	RepoRoot() (string, error)

	// CurrentBranch returns the branch checked out at dir.
	CurrentBranch(dir string) (string, error)

	// DefaultBranch returns the remote default branch (e.g. "main"),
	// falling back to "main" when it cannot be determined.
	DefaultBranch(dir string) string

	// BranchExists reports whether a local branch exists.
	BranchExists(dir, branch string) bool

	// HasUpstream reports whether the branch checked out at dir has a
	// remote-tracking counterpart configured.
	HasUpstream(dir string) bool

	// RemoteRefExists reports whether a remote-tracking ref for branch is
	// known locally, independent of upstream configuration. Messaging
	// only; must not touch the network.
	RemoteRefExists(dir, branch string) bool

	// IsDirty reports whether dir has any staged, unstaged, or untracked
	// changes relative to HEAD.
	IsDirty(dir string) (bool, error)

	// AheadOfUpstream returns the number of commits reachable from HEAD
	// but not from its upstream. Only meaningful when HasUpstream is true.
	AheadOfUpstream(dir string) (int, error)

	// TotalCommits returns the number of commits reachable from HEAD.
	TotalCommits(dir string) (int, error)

	// RecentUnpushedCommits returns up to limit unpushed commits, newest
	// first. With no upstream every commit counts as unpushed.
	RecentUnpushedCommits(dir string, limit int) ([]model.Commit, error)

	// ListWorktrees returns all worktrees of the repository at dir.
	ListWorktrees(dir string) ([]model.Workspace, error)

	// AddWorktree creates a worktree at path. With newBranch set a branch
	// is created off base; otherwise the existing branch is checked out.
	AddWorktree(dir, path, branch, base string, newBranch bool) error

	// RemoveWorktree removes the worktree at path, discarding its
	// contents.
	RemoveWorktree(dir, path string) error

	// DeleteBranch force-deletes a local branch.
	DeleteBranch(dir, branch string) error
}

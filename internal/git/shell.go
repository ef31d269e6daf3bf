package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"glade/internal/logger"
	"glade/internal/model"
)

// execCommand is swapped in tests to observe git invocations.
var execCommand = exec.Command

// Shell runs git commands through the git binary.
type Shell struct{}

// NewShell returns the production Runner backed by the git CLI.
func NewShell() *Shell {
	return &Shell{}
}

// Installed reports whether the git binary is on PATH.
func Installed() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

func (s *Shell) run(dir string, args ...string) (string, error) {
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}
	logger.Debugf("git %s", strings.Join(args, " "))
	out, err := execCommand("git", args...).Output()
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok && len(ee.Stderr) > 0 {
			return "", fmt.Errorf("git %s: %s", args[0], strings.TrimSpace(string(ee.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(out)), nil
}

func (s *Shell) RepoRoot() (string, error) {
	out, err := s.run("", "rev-parse", "--path-format=absolute", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository")
	}
	return out, nil
}

func (s *Shell) CurrentBranch(dir string) (string, error) {
	return s.run(dir, "branch", "--show-current")
}

func (s *Shell) DefaultBranch(dir string) string {
	out, err := s.run(dir, "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	if err == nil {
		// output is "origin/main"; strip the remote prefix
		if _, after, ok := strings.Cut(out, "/"); ok {
			return after
		}
	}
	return "main"
}

func (s *Shell) BranchExists(dir, branch string) bool {
	_, err := s.run(dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

func (s *Shell) HasUpstream(dir string) bool {
	_, err := s.run(dir, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}")
	return err == nil
}

// RemoteRefExists checks the local remote-tracking ref rather than asking
// the remote, keeping safety reports free of network round trips.
func (s *Shell) RemoteRefExists(dir, branch string) bool {
	_, err := s.run(dir, "show-ref", "--verify", "--quiet", "refs/remotes/origin/"+branch)
	return err == nil
}

func (s *Shell) IsDirty(dir string) (bool, error) {
	out, err := s.run(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out != "", nil
}

func (s *Shell) AheadOfUpstream(dir string) (int, error) {
	return s.countCommits(dir, "@{u}..HEAD")
}

func (s *Shell) TotalCommits(dir string) (int, error) {
	return s.countCommits(dir, "HEAD")
}

func (s *Shell) countCommits(dir, rangeSpec string) (int, error) {
	out, err := s.run(dir, "rev-list", "--count", rangeSpec)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("rev-list --count %s: unexpected output %q", rangeSpec, out)
	}
	return n, nil
}

func (s *Shell) RecentUnpushedCommits(dir string, limit int) ([]model.Commit, error) {
	rangeSpec := "HEAD"
	if s.HasUpstream(dir) {
		rangeSpec = "@{u}..HEAD"
	}
	out, err := s.run(dir, "log", "--format=%h\x1f%s", "-n", strconv.Itoa(limit), rangeSpec)
	if err != nil {
		return nil, err
	}
	return parseLog(out), nil
}

func parseLog(raw string) []model.Commit {
	var commits []model.Commit
	for _, line := range strings.Split(raw, "\n") {
		hash, subject, ok := strings.Cut(line, "\x1f")
		if !ok || hash == "" {
			continue
		}
		commits = append(commits, model.Commit{Hash: hash, Subject: subject})
	}
	return commits
}

func (s *Shell) ListWorktrees(dir string) ([]model.Workspace, error) {
	out, err := s.run(dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktrees(out), nil
}

// parseWorktrees parses `git worktree list --porcelain` output. Blocks are
// separated by blank lines; the first block is always the main worktree.
func parseWorktrees(raw string) []model.Workspace {
	var workspaces []model.Workspace
	for i, block := range strings.Split(strings.TrimSpace(raw), "\n\n") {
		ws := parseBlock(strings.TrimSpace(block))
		if ws == nil {
			continue
		}
		ws.IsMain = i == 0
		workspaces = append(workspaces, *ws)
	}
	return workspaces
}

func parseBlock(block string) *model.Workspace {
	var path, branch string
	detached := false

	for _, line := range strings.Split(block, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			path = strings.TrimPrefix(line, "worktree ")
		case strings.HasPrefix(line, "branch "):
			branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			detached = true
		}
	}

	if path == "" {
		return nil
	}
	if detached {
		branch = "detached"
	}

	return &model.Workspace{Path: path, Branch: branch}
}

func (s *Shell) AddWorktree(dir, path, branch, base string, newBranch bool) error {
	args := []string{"worktree", "add", path}
	if newBranch {
		args = append(args, "-b", branch, base)
	} else {
		args = append(args, branch)
	}
	cmd := execCommand("git", append([]string{"-C", dir}, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *Shell) RemoveWorktree(dir, path string) error {
	cmd := execCommand("git", "-C", dir, "worktree", "remove", "--force", path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	return nil
}

func (s *Shell) DeleteBranch(dir, branch string) error {
	cmd := execCommand("git", "-C", dir, "branch", "-D", branch)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s", strings.TrimSpace(string(out)))
	}
	return nil
}

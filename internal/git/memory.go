package git

import (
	"fmt"

	"glade/internal/model"
)

// BranchState is the fixture backing one branch in a Memory runner.
type BranchState struct {
	Dirty     bool
	Upstream  bool
	Ahead     int
	Total     int
	RemoteRef bool
	Commits   []model.Commit // newest first

	// Error injection for the conservative-failure paths.
	StatusErr error
	CountErr  error
	RemoveErr error
}

// Memory is an in-memory Runner fixture. It lets the safety gate and the
// CLI be tested without a real repository or the git binary.
type Memory struct {
	Root          string
	Default       string
	Branches      map[string]*BranchState
	Worktrees     []model.Workspace
	RemovedPaths  []string
	DeletedBranch []string
}

// NewMemory returns an empty fixture rooted at root.
func NewMemory(root string) *Memory {
	return &Memory{
		Root:     root,
		Default:  "main",
		Branches: map[string]*BranchState{},
	}
}

// AddWorkspace registers a worktree at path for branch with the given state.
func (m *Memory) AddWorkspace(path, branch string, state BranchState) {
	m.Branches[branch] = &state
	m.Worktrees = append(m.Worktrees, model.Workspace{
		Path:   path,
		Branch: branch,
		IsMain: len(m.Worktrees) == 0,
	})
}

func (m *Memory) branchAt(dir string) (*BranchState, string, error) {
	for _, wt := range m.Worktrees {
		if wt.Path == dir {
			if st, ok := m.Branches[wt.Branch]; ok {
				return st, wt.Branch, nil
			}
		}
	}
	return nil, "", fmt.Errorf("no worktree at %s", dir)
}

func (m *Memory) RepoRoot() (string, error) {
	if m.Root == "" {
		return "", fmt.Errorf("not inside a git repository")
	}
	return m.Root, nil
}

func (m *Memory) CurrentBranch(dir string) (string, error) {
	_, branch, err := m.branchAt(dir)
	return branch, err
}

func (m *Memory) DefaultBranch(dir string) string {
	return m.Default
}

func (m *Memory) BranchExists(dir, branch string) bool {
	_, ok := m.Branches[branch]
	return ok
}

func (m *Memory) HasUpstream(dir string) bool {
	st, _, err := m.branchAt(dir)
	return err == nil && st.Upstream
}

func (m *Memory) RemoteRefExists(dir, branch string) bool {
	st, ok := m.Branches[branch]
	return ok && st.RemoteRef
}

func (m *Memory) IsDirty(dir string) (bool, error) {
	st, _, err := m.branchAt(dir)
	if err != nil {
		return false, err
	}
	if st.StatusErr != nil {
		return false, st.StatusErr
	}
	return st.Dirty, nil
}

func (m *Memory) AheadOfUpstream(dir string) (int, error) {
	st, _, err := m.branchAt(dir)
	if err != nil {
		return 0, err
	}
	if st.CountErr != nil {
		return 0, st.CountErr
	}
	return st.Ahead, nil
}

func (m *Memory) TotalCommits(dir string) (int, error) {
	st, _, err := m.branchAt(dir)
	if err != nil {
		return 0, err
	}
	if st.CountErr != nil {
		return 0, st.CountErr
	}
	return st.Total, nil
}

func (m *Memory) RecentUnpushedCommits(dir string, limit int) ([]model.Commit, error) {
	st, _, err := m.branchAt(dir)
	if err != nil {
		return nil, err
	}
	if limit > len(st.Commits) {
		limit = len(st.Commits)
	}
	return st.Commits[:limit], nil
}

func (m *Memory) ListWorktrees(dir string) ([]model.Workspace, error) {
	out := make([]model.Workspace, len(m.Worktrees))
	copy(out, m.Worktrees)
	return out, nil
}

func (m *Memory) AddWorktree(dir, path, branch, base string, newBranch bool) error {
	if newBranch {
		if _, exists := m.Branches[branch]; exists {
			return fmt.Errorf("branch %s already exists", branch)
		}
		m.Branches[branch] = &BranchState{}
	} else if _, exists := m.Branches[branch]; !exists {
		return fmt.Errorf("branch %s not found", branch)
	}
	m.Worktrees = append(m.Worktrees, model.Workspace{Path: path, Branch: branch})
	return nil
}

func (m *Memory) RemoveWorktree(dir, path string) error {
	for i, wt := range m.Worktrees {
		if wt.Path != path {
			continue
		}
		if st := m.Branches[wt.Branch]; st != nil && st.RemoveErr != nil {
			return st.RemoveErr
		}
		m.Worktrees = append(m.Worktrees[:i], m.Worktrees[i+1:]...)
		m.RemovedPaths = append(m.RemovedPaths, path)
		return nil
	}
	return fmt.Errorf("no worktree at %s", path)
}

func (m *Memory) DeleteBranch(dir, branch string) error {
	if _, ok := m.Branches[branch]; !ok {
		return fmt.Errorf("branch %s not found", branch)
	}
	delete(m.Branches, branch)
	m.DeletedBranch = append(m.DeletedBranch, branch)
	return nil
}

package model

// PR holds pull/merge request metadata fetched via gh or glab.
// Used for messaging only; it never feeds the cleanup safety verdict.
type PR struct {
	Number         int    // GitLab IID or GitHub PR number
	Title          string
	WebURL         string
	State          string // "open", "merged", "closed"
	PipelineStatus string // "success", "failed", "running", "pending", "canceled", etc.
	Draft          bool
	Forge          string // "gitlab" | "github"
}

// Commit is a short log entry: abbreviated hash plus subject line.
type Commit struct {
	Hash    string
	Subject string
}

// Workspace represents a branch-specific git worktree and its associated
// tmux session.
type Workspace struct {
	Path        string
	Branch      string
	Slug        string // reversible encoding of Branch, e.g. "feat-payment_-retries"
	IsMain      bool   // the primary checkout, never cleaned up
	TmuxRunning bool
	PR          *PR // nil if no PR found or forge CLI unavailable
}

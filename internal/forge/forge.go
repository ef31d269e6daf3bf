// Package forge fetches pull/merge request state for a branch via the gh
// or glab CLI. It only informs messaging (list output, cleanup
// confirmations); the safety verdict never depends on it.
package forge

import (
	"os/exec"
	"strings"

	"glade/internal/model"
)

// Fetcher abstracts GitLab and GitHub PR lookups.
type Fetcher interface {
	Kind() string // "gitlab" | "github"
	FetchPR(branch string) (*model.PR, error)
}

// Detect returns the appropriate Fetcher for the repo at repoRoot, or nil
// if the remote is unrecognised or no remote exists.
func Detect(repoRoot string) Fetcher {
	out, err := exec.Command("git", "-C", repoRoot, "remote", "get-url", "origin").Output()
	if err != nil {
		return nil
	}
	remote := strings.ToLower(strings.TrimSpace(string(out)))

	switch {
	case strings.Contains(remote, "github.com"):
		return &gitHub{}
	case strings.Contains(remote, "gitlab"):
		return &gitLab{}
	default:
		// Last-resort probe: if glab is configured for this repo, treat as GitLab.
		probe := exec.Command("glab", "repo", "view")
		probe.Dir = repoRoot
		if probe.Run() == nil {
			return &gitLab{}
		}
		return nil
	}
}

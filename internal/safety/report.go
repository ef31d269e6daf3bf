// Package safety implements the cleanup safety gate: deciding whether
// tearing down a workspace would lose work that exists nowhere else.
package safety

import (
	"os"

	"glade/internal/git"
	"glade/internal/logger"
	"glade/internal/model"
)

// PreviewLimit caps the unpushed-commit preview shown in blocked output.
const PreviewLimit = 5

// Report is a point-in-time snapshot of what a workspace would lose if
// removed. Always computed fresh; the underlying state can change between
// invocations.
type Report struct {
	HasUncommittedChanges bool
	UnpushedCommits       int
	RemoteRefExists       bool

	// RecentUnpushed previews the newest unpushed commits, capped at
	// PreviewLimit.
	RecentUnpushed []model.Commit

	// Indeterminate lists checks whose git query failed. An
	// undeterminable check blocks cleanup rather than passing as clean.
	Indeterminate []string
}

// Clean reports that removal loses nothing.
func (r Report) Clean() bool {
	return !r.HasUncommittedChanges && r.UnpushedCommits == 0 && len(r.Indeterminate) == 0
}

// BuildReport inspects the workspace at path for branch. A missing
// directory yields a clean report: there is nothing left to lose. Failing
// git queries are recorded as indeterminate instead of assumed clean.
func BuildReport(runner git.Runner, path, branch string) Report {
	var report Report

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return report
		}
		// A path we cannot even stat is unknown state, not clean state.
		logger.Debugf("stat failed for %s: %v", path, err)
		report.Indeterminate = append(report.Indeterminate, "workspace state")
		return report
	}

	dirty, err := runner.IsDirty(path)
	if err != nil {
		logger.Debugf("status check failed for %s: %v", path, err)
		report.Indeterminate = append(report.Indeterminate, "uncommitted changes")
	}
	report.HasUncommittedChanges = dirty

	if runner.HasUpstream(path) {
		report.UnpushedCommits, err = runner.AheadOfUpstream(path)
	} else {
		// No tracking ref: every commit on the branch is unpushed.
		report.UnpushedCommits, err = runner.TotalCommits(path)
	}
	if err != nil {
		logger.Debugf("commit count failed for %s: %v", path, err)
		report.UnpushedCommits = 0
		report.Indeterminate = append(report.Indeterminate, "unpushed commits")
	}

	report.RemoteRefExists = runner.RemoteRefExists(path, branch)

	if report.UnpushedCommits > 0 {
		commits, err := runner.RecentUnpushedCommits(path, PreviewLimit)
		if err != nil {
			logger.Debugf("commit preview failed for %s: %v", path, err)
		}
		report.RecentUnpushed = commits
	}

	return report
}

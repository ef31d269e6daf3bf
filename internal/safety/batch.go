package safety

import (
	"glade/internal/git"
	"glade/internal/model"
)

// Item is one workspace's gate outcome within a sweep.
type Item struct {
	Workspace model.Workspace
	Report    Report
	Decision  Decision
}

// SweepResult aggregates a batch sweep. When Aborted is set, nothing may
// be removed: the batch is all-or-nothing.
type SweepResult struct {
	Items []Item

	// Aborted is true when any workspace was Blocked.
	Aborted bool

	// BlockedUnpushed is the total unpushed-commit count across all
	// blocked workspaces.
	BlockedUnpushed int
}

// Sweep applies the safety gate to every workspace with a shared force
// flag. It only inspects and decides; the caller performs (or refuses)
// the removals.
func Sweep(runner git.Runner, workspaces []model.Workspace, force bool) SweepResult {
	var result SweepResult
	for _, ws := range workspaces {
		report := BuildReport(runner, ws.Path, ws.Branch)
		decision := Decide(report, force)
		if decision.Verdict == Blocked {
			result.Aborted = true
			result.BlockedUnpushed += report.UnpushedCommits
		}
		result.Items = append(result.Items, Item{Workspace: ws, Report: report, Decision: decision})
	}
	return result
}

// BlockedItems returns the items that were blocked.
func (r SweepResult) BlockedItems() []Item {
	var blocked []Item
	for _, item := range r.Items {
		if item.Decision.Verdict == Blocked {
			blocked = append(blocked, item)
		}
	}
	return blocked
}

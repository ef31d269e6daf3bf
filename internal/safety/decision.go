package safety

import (
	"fmt"

	"glade/internal/model"
)

// Verdict is the outcome of the safety gate.
type Verdict int

const (
	// Proceed means removal loses nothing and may run automatically.
	Proceed Verdict = iota
	// Blocked means removal would lose work and force was not given.
	// A Blocked decision must never be followed by destructive action.
	Blocked
	// ForcedProceed means removal would lose work but the caller opted
	// in. The reasons are still surfaced before destruction.
	ForcedProceed
)

func (v Verdict) String() string {
	switch v {
	case Proceed:
		return "proceed"
	case Blocked:
		return "blocked"
	case ForcedProceed:
		return "forced"
	default:
		return fmt.Sprintf("verdict(%d)", int(v))
	}
}

// Decision pairs a verdict with the human-readable reasons behind it and a
// preview of the commits at risk.
type Decision struct {
	Verdict Verdict
	Reasons []string
	Preview []model.Commit
}

// Decide is a pure function of a report and the force flag. Uncommitted
// changes and unpushed commits are independent conditions; either alone
// blocks.
func Decide(report Report, force bool) Decision {
	if report.Clean() {
		return Decision{Verdict: Proceed}
	}

	var reasons []string
	if report.HasUncommittedChanges {
		reasons = append(reasons, "uncommitted changes")
	}
	if report.UnpushedCommits > 0 {
		reasons = append(reasons, fmt.Sprintf("%d unpushed commit(s)", report.UnpushedCommits))
		if !report.RemoteRefExists {
			reasons = append(reasons, "no remote ref for this branch: unpushed commits will be lost forever")
		}
	}
	for _, check := range report.Indeterminate {
		reasons = append(reasons, fmt.Sprintf("could not verify %s", check))
	}

	verdict := Blocked
	if force {
		verdict = ForcedProceed
	}
	return Decision{Verdict: verdict, Reasons: reasons, Preview: report.RecentUnpushed}
}

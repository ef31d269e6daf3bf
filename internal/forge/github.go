package forge

import (
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"glade/internal/model"
)

type gitHub struct{}

func (g *gitHub) Kind() string { return "github" }

// ghPR mirrors the fields we care about from gh's JSON output.
type ghPR struct {
	Number            int    `json:"number"`
	Title             string `json:"title"`
	State             string `json:"state"` // "OPEN", "MERGED", "CLOSED"
	URL               string `json:"url"`
	IsDraft           bool   `json:"isDraft"`
	StatusCheckRollup string `json:"statusCheckRollup"` // "SUCCESS", "FAILURE", "PENDING", ""
}

// FetchPR returns the most relevant PR for the given branch using the gh
// CLI. Returns (nil, nil) if gh is unavailable or no PR exists: a missing
// PR is not an error worth surfacing.
func (g *gitHub) FetchPR(branch string) (*model.PR, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx,
		"gh", "pr", "list",
		"--head", branch,
		"--state", "all",
		"--json", "number,title,state,url,isDraft,statusCheckRollup",
	).Output()
	if err != nil {
		return nil, nil
	}

	var prs []ghPR
	if err := json.Unmarshal(out, &prs); err != nil {
		return nil, nil
	}

	// prefer open PR; fall back to most recent
	var found *ghPR
	for i := range prs {
		if prs[i].State == "OPEN" {
			found = &prs[i]
			break
		}
	}
	if found == nil && len(prs) > 0 {
		found = &prs[0]
	}
	if found == nil {
		return nil, nil
	}

	return &model.PR{
		Number:         found.Number,
		Title:          found.Title,
		WebURL:         found.URL,
		State:          ghState(found.State),
		Draft:          found.IsDraft,
		PipelineStatus: ghCIStatus(found.StatusCheckRollup),
		Forge:          "github",
	}, nil
}

// ghState maps GitHub PR state strings to our unified model.
func ghState(s string) string {
	switch s {
	case "OPEN":
		return "open"
	case "MERGED":
		return "merged"
	case "CLOSED":
		return "closed"
	default:
		return s
	}
}

// ghCIStatus maps GitHub's statusCheckRollup to our pipeline status strings.
func ghCIStatus(s string) string {
	switch s {
	case "SUCCESS":
		return "success"
	case "FAILURE", "ERROR":
		return "failed"
	case "PENDING", "EXPECTED", "STALE":
		return "pending"
	case "":
		return ""
	default:
		return "pending"
	}
}

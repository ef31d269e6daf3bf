package forge

import (
	"context"
	"encoding/json"
	"os/exec"
	"time"

	"glade/internal/model"
)

type gitLab struct{}

func (g *gitLab) Kind() string { return "gitlab" }

// glabMR mirrors the fields we care about from glab's JSON output.
type glabMR struct {
	IID      int    `json:"iid"`
	Title    string `json:"title"`
	State    string `json:"state"`
	WebURL   string `json:"web_url"`
	Draft    bool   `json:"draft"`
	Pipeline *struct {
		Status string `json:"status"`
	} `json:"pipeline"`
}

func (g *gitLab) FetchPR(branch string) (*model.PR, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx,
		"glab", "mr", "list",
		"--source-branch", branch,
		"-F", "json",
	).Output()
	if err != nil {
		return nil, nil
	}

	var mrs []glabMR
	if err := json.Unmarshal(out, &mrs); err != nil {
		return nil, nil
	}

	// prefer open MR; fall back to most recent (e.g. merged)
	var found *glabMR
	for i := range mrs {
		if mrs[i].State == "opened" {
			found = &mrs[i]
			break
		}
	}
	if found == nil && len(mrs) > 0 {
		found = &mrs[0]
	}
	if found == nil {
		return nil, nil
	}

	pr := &model.PR{
		Number: found.IID,
		Title:  found.Title,
		WebURL: found.WebURL,
		State:  normaliseState(found.State),
		Draft:  found.Draft,
		Forge:  "gitlab",
	}
	if found.Pipeline != nil {
		pr.PipelineStatus = found.Pipeline.Status
	}
	return pr, nil
}

// normaliseState maps GitLab state strings to our unified model.
func normaliseState(s string) string {
	switch s {
	case "opened":
		return "open"
	default:
		return s // "merged", "closed" are already canonical
	}
}

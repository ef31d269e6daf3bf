package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"glade/internal/forge"
	"glade/internal/logger"
	"glade/internal/safety"
	"glade/internal/workspace"
)

func newListCmd() *cobra.Command {
	var prs bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List workspaces with their git and session state",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}
			return runList(ctx, os.Stdout, prs)
		},
	}
	cmd.Flags().BoolVar(&prs, "prs", false, "include pull/merge request state (needs gh or glab)")
	return cmd
}

func runList(ctx *workspace.Context, w io.Writer, withPRs bool) error {
	workspaces, err := ctx.Workspaces()
	if err != nil {
		return err
	}
	if len(workspaces) == 0 {
		fmt.Fprintln(w, "no workspaces, create one with: glade new <branch>")
		return nil
	}

	var fetcher forge.Fetcher
	if withPRs {
		if fetcher = forge.Detect(ctx.RepoRoot); fetcher != nil {
			logger.Debugf("fetching pull request state via %s", fetcher.Kind())
		}
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := "BRANCH\tSLUG\tSTATE\tSESSION"
	if fetcher != nil {
		header += "\tPR"
	}
	fmt.Fprintln(tw, header)

	for _, ws := range workspaces {
		report := safety.BuildReport(ctx.Git, ws.Path, ws.Branch)

		state := okStyle.Render("clean")
		switch {
		case report.HasUncommittedChanges && report.UnpushedCommits > 0:
			state = warnStyle.Render(fmt.Sprintf("dirty, %d ahead", report.UnpushedCommits))
		case report.HasUncommittedChanges:
			state = warnStyle.Render("dirty")
		case report.UnpushedCommits > 0:
			state = warnStyle.Render(fmt.Sprintf("%d ahead", report.UnpushedCommits))
		}

		session := dimStyle.Render("stopped")
		if sessionExists(ctx.SessionName(ws.Branch)) {
			session = okStyle.Render("running")
		}

		row := fmt.Sprintf("%s\t%s\t%s\t%s", ws.Branch, ws.Slug, state, session)
		if fetcher != nil {
			row += "\t" + prLabel(fetcher, ws.Branch)
		}
		fmt.Fprintln(tw, row)
	}
	return tw.Flush()
}

func prLabel(fetcher forge.Fetcher, branch string) string {
	pr, _ := fetcher.FetchPR(branch)
	if pr == nil {
		return dimStyle.Render("-")
	}
	label := fmt.Sprintf("#%d %s", pr.Number, pr.State)
	switch pr.State {
	case "merged":
		return okStyle.Render(label)
	case "open":
		return warnStyle.Render(label)
	default:
		return dimStyle.Render(label)
	}
}

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"glade/internal/logger"
	"glade/internal/safety"
	"glade/internal/workspace"
)

func newCleanupAllCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cleanup-all",
		Short: "Remove every workspace of the current project",
		Long: `Applies the cleanup safety check to every workspace. If any workspace is
blocked, nothing at all is removed. With --force every workspace is
removed, each logging the work it discards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}
			return runCleanupAll(ctx, os.Stdout, force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "discard uncommitted and unpushed work without blocking")
	return cmd
}

func runCleanupAll(ctx *workspace.Context, w io.Writer, force bool) error {
	workspaces, err := ctx.Workspaces()
	if err != nil {
		return err
	}
	if len(workspaces) == 0 {
		fmt.Fprintln(w, "no workspaces to clean up")
		return nil
	}

	result := safety.Sweep(ctx.Git, workspaces, force)

	// All-or-nothing: one blocked workspace aborts the whole batch.
	if result.Aborted {
		blocked := result.BlockedItems()
		for _, item := range blocked {
			printBlocked(w, item.Workspace.Branch, item.Decision)
		}
		fmt.Fprintf(w, "%d workspace(s) blocked, %d unpushed commit(s) at risk\n",
			len(blocked), result.BlockedUnpushed)
		return fmt.Errorf("cleanup-all aborted, nothing was removed")
	}

	removed := 0
	for _, item := range result.Items {
		if item.Decision.Verdict == safety.ForcedProceed {
			warnOverridden(item.Workspace.Branch, item.Decision)
		}
		// A single failed removal is a warning, not an abort: the
		// remaining workspaces still get cleaned up.
		if err := removeWorkspace(ctx, item.Workspace.Path, item.Workspace.Branch); err != nil {
			logger.Warnf("remove %s: %v", item.Workspace.Branch, err)
			fmt.Fprintf(w, "%s failed to remove %s: %v\n",
				warnStyle.Render("!"), item.Workspace.Branch, err)
			continue
		}
		removed++
		fmt.Fprintf(w, "%s removed workspace %s\n", okStyle.Render("✓"), item.Workspace.Branch)
	}
	fmt.Fprintf(w, "removed %d of %d workspace(s)\n", removed, len(result.Items))
	return nil
}

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

func newCleanupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cleanup <branch>",
		Short: "Remove a workspace: kill its session, remove the worktree, delete the branch",
		Long: `Removes the workspace for a branch. Blocked when the workspace holds
uncommitted changes or commits no remote has, unless --force is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext()
			if err != nil {
				return err
			}
			return runCleanup(ctx, os.Stdout, args[0], force)
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "discard uncommitted and unpushed work without blocking")
	return cmd
}

func runCleanup(ctx *workspace.Context, w io.Writer, branch string, force bool) error {
	ws, err := ctx.Find(branch)
	if err != nil {
		return err
	}
	if ws == nil {
		fmt.Fprintf(w, "no workspace for %s, nothing to clean up\n", branch)
		return nil
	}

	report := safety.BuildReport(ctx.Git, ws.Path, branch)
	decision := safety.Decide(report, force)

	switch decision.Verdict {
	case safety.Blocked:
		printBlocked(w, branch, decision)
		return fmt.Errorf("cleanup of %s blocked", branch)
	case safety.ForcedProceed:
		warnOverridden(branch, decision)
	}

	if err := removeWorkspace(ctx, ws.Path, branch); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s removed workspace %s\n", okStyle.Render("✓"), branch)
	return nil
}

// removeWorkspace performs the teardown: session first, then worktree,
// then the branch. Branch deletion is best-effort; the branch may be
// checked out elsewhere or already gone.
func removeWorkspace(ctx *workspace.Context, path, branch string) error {
	if err := killSession(ctx.SessionName(branch)); err != nil {
		logger.Warnf("kill session for %s: %v", branch, err)
	}
	if err := ctx.Git.RemoveWorktree(ctx.RepoRoot, path); err != nil {
		return fmt.Errorf("remove worktree: %w", err)
	}
	if err := ctx.Git.DeleteBranch(ctx.RepoRoot, branch); err != nil {
		logger.Debugf("delete branch %s: %v", branch, err)
	}
	return nil
}

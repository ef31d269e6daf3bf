// Package cli wires the glade commands. Commands build an explicit
// workspace.Context up front and thread it into the safety gate, so the
// command bodies stay testable against fabricated contexts.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glade/internal/git"
	"glade/internal/logger"
	"glade/internal/tmux"
	"glade/internal/workspace"
)

var rootCmd = &cobra.Command{
	Use:   "glade",
	Short: "Per-branch development workspaces: a git worktree plus a tmux session",
	Long: `glade manages one development workspace per branch, each made of a git
worktree and a tmux session. Running glade with no arguments opens the
interactive dashboard.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := loadContext()
		if err != nil {
			return err
		}
		return runDashboard(ctx)
	},
}

// Execute runs the CLI and exits non-zero on any error, including a
// blocked cleanup.
func Execute() {
	logger.Configure()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(
		newNewCmd(),
		newSwitchCmd(),
		newListCmd(),
		newCleanupCmd(),
		newCleanupAllCmd(),
	)
}

// Indirection over the tmux surface so command tests never touch a real
// tmux server.
var (
	ensureSession = tmux.EnsureSession
	killSession   = tmux.KillSession
	sessionExists = tmux.SessionExists
)

// loadContext checks preconditions (required tools, inside a repository)
// and builds the per-invocation context. Fails before any workspace logic
// runs.
func loadContext() (*workspace.Context, error) {
	if !git.Installed() {
		return nil, fmt.Errorf("git is required but not found on PATH")
	}
	if !tmux.Installed() {
		return nil, fmt.Errorf("tmux is required but not found on PATH")
	}
	return workspace.Load(git.NewShell())
}
